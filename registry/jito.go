package registry

import (
	"context"

	"github.com/solkit-labs/solkit/kit"
	"github.com/solkit-labs/solkit/tool"
)

func jitoTools(k kit.Kit) []*tool.Adapter {
	return []*tool.Adapter{
		mustTool(tool.Spec{
			Name:           "get_tip_accounts",
			Description:    "Get all available Jito tip accounts.",
			NoInput:        true,
			SuccessMessage: "Tip accounts fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				accounts, err := k.GetTipAccounts(ctx)
				if err != nil {
					return nil, err
				}
				return map[string]any{"accounts": accounts}, nil
			},
		}),
		mustTool(tool.Spec{
			Name:           "get_random_tip_account",
			Description:    "Get a randomly selected Jito tip account from the existing list.",
			NoInput:        true,
			SuccessMessage: "Tip account fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				account, err := k.GetRandomTipAccount(ctx)
				if err != nil {
					return nil, err
				}
				return map[string]any{"account": account}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "get_bundle_statuses",
			Description: `Get the current statuses of specified Jito bundles.

Input (JSON string):
{
    "bundle_uuids": ["list of bundle UUIDs"]
}`,
			Schema: tool.Schema{
				{Name: "bundle_uuids", Spec: tool.FieldSpec{Type: tool.KindArray, Required: true}},
			},
			SuccessMessage: "Bundle statuses fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				statuses, err := k.GetBundleStatuses(ctx, args.Strings("bundle_uuids"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"statuses": statuses}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "send_bundle",
			Description: `Send a bundle of transactions to the Jito network for processing.

Input (JSON string):
{
    "txn_signatures": ["list of transaction signatures"]
}`,
			Schema: tool.Schema{
				{Name: "txn_signatures", Spec: tool.FieldSpec{Type: tool.KindArray, Required: true}},
			},
			SuccessMessage: "Bundle submitted successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				bundleID, err := k.SendBundle(ctx, args.Strings("txn_signatures"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"bundle_id": bundleID}, nil
			},
		}),
	}
}
