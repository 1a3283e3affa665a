package registry

import (
	"context"

	"github.com/solkit-labs/solkit/kit"
	"github.com/solkit-labs/solkit/tool"
)

func heliusTools(k kit.Kit) []*tool.Adapter {
	return []*tool.Adapter{
		mustTool(tool.Spec{
			Name: "solana_helius_get_balances",
			Description: `Fetch the balances for a given Solana address.

Input (JSON string):
{
    "address": "string, the Solana address"
}`,
			Schema: tool.Schema{
				{Name: "address", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Balances fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				result, err := k.GetBalances(ctx, args.String("address"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"data": result}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_helius_get_address_name",
			Description: `Fetch the name of a given Solana address.

Input (JSON string):
{
    "address": "string, the Solana address"
}`,
			Schema: tool.Schema{
				{Name: "address", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Address name fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				name, err := k.GetAddressName(ctx, args.String("address"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"data": name}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_helius_get_nft_events",
			Description: `Fetch NFT events for the given accounts.

Input (JSON string):
{
    "accounts": ["list of addresses to fetch NFT events for"],
    "types": ["optional list of event types"]
}`,
			Schema: tool.Schema{
				{Name: "accounts", Spec: tool.FieldSpec{Type: tool.KindArray, Required: true}},
				{Name: "types", Spec: tool.FieldSpec{Type: tool.KindArray}},
			},
			SuccessMessage: "NFT events fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				result, err := k.GetNFTEvents(ctx, args.Strings("accounts"), args.Strings("types"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"data": result}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_helius_get_mintlists",
			Description: `Fetch mintlists for a given list of verified creators.

Input (JSON string):
{
    "first_verified_creators": ["list of first verified creator addresses"],
    "verified_collection_addresses": ["optional list of verified collection addresses"],
    "limit": 100 (optional)
}`,
			Schema: tool.Schema{
				{Name: "first_verified_creators", Spec: tool.FieldSpec{Type: tool.KindArray, Required: true}},
				{Name: "verified_collection_addresses", Spec: tool.FieldSpec{Type: tool.KindArray}},
				{Name: "limit", Spec: tool.FieldSpec{Type: tool.KindInteger}},
			},
			SuccessMessage: "Mintlists fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				result, err := k.GetMintlists(ctx,
					args.Strings("first_verified_creators"),
					args.Strings("verified_collection_addresses"),
					args.Int("limit"),
				)
				if err != nil {
					return nil, err
				}
				return map[string]any{"data": result}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_helius_get_active_listings",
			Description: `Fetch active NFT listings from various marketplaces.

Input (JSON string):
{
    "first_verified_creators": ["list of verified creator addresses"],
    "marketplaces": ["optional list of marketplaces"],
    "limit": 100 (optional)
}`,
			Schema: tool.Schema{
				{Name: "first_verified_creators", Spec: tool.FieldSpec{Type: tool.KindArray, Required: true}},
				{Name: "marketplaces", Spec: tool.FieldSpec{Type: tool.KindArray}},
				{Name: "limit", Spec: tool.FieldSpec{Type: tool.KindInteger}},
			},
			SuccessMessage: "Active listings fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				result, err := k.GetActiveListings(ctx,
					args.Strings("first_verified_creators"),
					args.Strings("marketplaces"),
					args.Int("limit"),
				)
				if err != nil {
					return nil, err
				}
				return map[string]any{"data": result}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_helius_get_nft_metadata",
			Description: `Fetch metadata for NFTs based on their mint accounts.

Input (JSON string):
{
    "mint_addresses": ["list of NFT mint addresses"]
}`,
			Schema: tool.Schema{
				{Name: "mint_addresses", Spec: tool.FieldSpec{Type: tool.KindArray, Required: true}},
			},
			SuccessMessage: "NFT metadata fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				result, err := k.GetNFTMetadata(ctx, args.Strings("mint_addresses"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"data": result}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_helius_get_parsed_transactions",
			Description: `Fetch parsed transactions for a list of transaction signatures.

Input (JSON string):
{
    "signatures": ["list of transaction signatures"],
    "commitment": "optional commitment level"
}`,
			Schema: tool.Schema{
				{Name: "signatures", Spec: tool.FieldSpec{Type: tool.KindArray, Required: true}},
				{Name: "commitment", Spec: tool.FieldSpec{Type: tool.KindString}},
			},
			SuccessMessage: "Parsed transactions fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				result, err := k.GetParsedTransactions(ctx, args.Strings("signatures"), args.String("commitment"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"data": result}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_helius_create_webhook",
			Description: `Create a webhook for transaction events.

Input (JSON string):
{
    "webhook_url": "URL to send the webhook data",
    "transaction_types": ["list of transaction types to listen for"],
    "account_addresses": ["list of account addresses to monitor"],
    "webhook_type": "type of webhook",
    "txn_status": "optional, transaction status to filter by (defaults to all)"
}`,
			Schema: tool.Schema{
				{Name: "webhook_url", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "transaction_types", Spec: tool.FieldSpec{Type: tool.KindArray, Required: true}},
				{Name: "account_addresses", Spec: tool.FieldSpec{Type: tool.KindArray, Required: true}},
				{Name: "webhook_type", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "txn_status", Spec: tool.FieldSpec{Type: tool.KindString}},
			},
			SuccessMessage: "Webhook created successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				result, err := k.CreateWebhook(ctx, webhookParams(args))
				if err != nil {
					return nil, err
				}
				return map[string]any{"data": result}, nil
			},
		}),
		mustTool(tool.Spec{
			Name:           "solana_helius_get_all_webhooks",
			Description:    "Fetch all webhooks created in the system.",
			NoInput:        true,
			SuccessMessage: "Webhooks fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				result, err := k.GetAllWebhooks(ctx)
				if err != nil {
					return nil, err
				}
				return map[string]any{"data": result}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_helius_get_webhook",
			Description: `Retrieve a specific webhook by ID.

Input (JSON string):
{
    "webhook_id": "ID of the webhook to retrieve"
}`,
			Schema: tool.Schema{
				{Name: "webhook_id", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Webhook fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				result, err := k.GetWebhook(ctx, args.String("webhook_id"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"data": result}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_helius_edit_webhook",
			Description: `Edit an existing webhook by its ID.

Input (JSON string):
{
    "webhook_id": "ID of the webhook to edit",
    "webhook_url": "updated URL for the webhook",
    "transaction_types": ["updated list of transaction types"],
    "account_addresses": ["updated list of account addresses"],
    "webhook_type": "updated webhook type",
    "txn_status": "optional, updated transaction status filter"
}`,
			Schema: tool.Schema{
				{Name: "webhook_id", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "webhook_url", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "transaction_types", Spec: tool.FieldSpec{Type: tool.KindArray, Required: true}},
				{Name: "account_addresses", Spec: tool.FieldSpec{Type: tool.KindArray, Required: true}},
				{Name: "webhook_type", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "txn_status", Spec: tool.FieldSpec{Type: tool.KindString}},
			},
			SuccessMessage: "Webhook updated successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				result, err := k.EditWebhook(ctx, args.String("webhook_id"), webhookParams(args))
				if err != nil {
					return nil, err
				}
				return map[string]any{"data": result}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_helius_delete_webhook",
			Description: `Delete a webhook by its ID.

Input (JSON string):
{
    "webhook_id": "ID of the webhook to delete"
}`,
			Schema: tool.Schema{
				{Name: "webhook_id", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Webhook deleted successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				deleted, err := k.DeleteWebhook(ctx, args.String("webhook_id"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"data": deleted}, nil
			},
		}),
	}
}

func webhookParams(args tool.Args) kit.WebhookParams {
	return kit.WebhookParams{
		WebhookURL:       args.String("webhook_url"),
		TransactionTypes: args.Strings("transaction_types"),
		AccountAddresses: args.Strings("account_addresses"),
		WebhookType:      args.String("webhook_type"),
		TxnStatus:        args.StringOr("txn_status", "all"),
	}
}
