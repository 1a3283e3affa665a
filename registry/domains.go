package registry

import (
	"context"

	"github.com/solkit-labs/solkit/kit"
	"github.com/solkit-labs/solkit/tool"
)

func domainTools(k kit.Kit) []*tool.Adapter {
	return []*tool.Adapter{
		mustTool(tool.Spec{
			Name: "solana_sns_resolve",
			Description: `Resolves a Solana Name Service (SNS) domain to its corresponding address.

Input (JSON string):
{
    "domain": "string, the SNS domain (e.g., example.sol)"
}`,
			Schema: tool.Schema{
				{Name: "domain", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Domain resolved successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				address, err := k.ResolveDomain(ctx, args.String("domain"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"address": address.String()}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_sns_register_domain",
			Description: `Prepares a transaction to register a new SNS domain.

Input (JSON string):
{
    "domain": "string, the domain to register",
    "space": 1024
}`,
			Schema: tool.Schema{
				{Name: "domain", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "space", Spec: tool.FieldSpec{Type: tool.KindInteger, Required: true, Min: tool.Bound(1)}},
			},
			SuccessMessage: "Domain registration transaction prepared successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				transaction, err := k.RegisterDomain(ctx, args.String("domain"), args.Int("space"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"transaction": transaction}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_sns_get_all_domains",
			Description: `Fetches all domains associated with a given owner.

Input (JSON string):
{
    "owner": "string, the base58-encoded public key of the domain owner"
}`,
			Schema: tool.Schema{
				{Name: "owner", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Domains fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				owner, err := parseAddress(args, "owner")
				if err != nil {
					return nil, err
				}
				domains, err := k.GetAllDomainsForOwner(ctx, owner)
				if err != nil {
					return nil, err
				}
				if domains == nil {
					domains = []string{}
				}
				return map[string]any{"domains": domains}, nil
			},
		}),
	}
}
