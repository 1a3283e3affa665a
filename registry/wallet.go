package registry

import (
	"context"

	"github.com/solkit-labs/solkit/kit"
	"github.com/solkit-labs/solkit/tool"
)

func walletTools(k kit.Kit) []*tool.Adapter {
	return []*tool.Adapter{
		mustTool(tool.Spec{
			Name: "solana_balance",
			Description: `Get the balance of a Solana wallet or token account.

Input (JSON string):
{
    "token_address": "mint_address" (optional; omit for the SOL balance)
}`,
			Schema: tool.Schema{
				{Name: "token_address", Spec: tool.FieldSpec{Type: tool.KindString}},
			},
			SuccessMessage: "Balance fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				mint, err := optionalAddress(args, "token_address")
				if err != nil {
					return nil, err
				}
				balance, err := k.Balance(ctx, mint)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"balance": balance,
					"token":   args.StringOr("token_address", "SOL"),
				}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_transfer",
			Description: `Transfer tokens or SOL to another address.

Input (JSON string):
{
    "to": "wallet_address",
    "amount": 1,
    "mint": "mint_address" (optional)
}`,
			Schema: tool.Schema{
				{Name: "to", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "amount", Spec: tool.FieldSpec{Type: tool.KindInteger, Required: true, Min: tool.Bound(1)}},
				{Name: "mint", Spec: tool.FieldSpec{Type: tool.KindString}},
			},
			SuccessMessage: "Transfer completed successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				recipient, err := parseAddress(args, "to")
				if err != nil {
					return nil, err
				}
				mint, err := optionalAddress(args, "mint")
				if err != nil {
					return nil, err
				}
				signature, err := k.Transfer(ctx, recipient, args.Float("amount"), mint)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"amount":      args.Int("amount"),
					"recipient":   args.String("to"),
					"token":       args.StringOr("mint", "SOL"),
					"transaction": signature,
				}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_deploy_token",
			Description: `Deploy a new SPL token.

Input (JSON string):
{
    "decimals": 9,
    "initialSupply": 1000
}`,
			Schema: tool.Schema{
				{Name: "decimals", Spec: tool.FieldSpec{Type: tool.KindInteger, Required: true, Min: tool.Bound(0), Max: tool.Bound(9)}},
				{Name: "initialSupply", Spec: tool.FieldSpec{Type: tool.KindInteger, Required: true, Min: tool.Bound(1)}},
			},
			SuccessMessage: "Token deployed successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				decimals := args.IntOr("decimals", 9)
				deployment, err := k.DeployToken(ctx, decimals)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"mintAddress": deployment.Mint.String(),
					"decimals":    decimals,
				}, nil
			},
		}),
		mustTool(tool.Spec{
			Name:           "solana_request_funds",
			Description:    "Request test funds from a Solana faucet.",
			NoInput:        true,
			SuccessMessage: "Faucet funds requested successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				result, err := k.RequestFaucetFunds(ctx)
				if err != nil {
					return nil, err
				}
				return map[string]any{"result": result}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_stake",
			Description: `Stake assets on Solana.

Input (JSON string):
{
    "amount": 1
}`,
			Schema: tool.Schema{
				{Name: "amount", Spec: tool.FieldSpec{Type: tool.KindInteger, Required: true, Min: tool.Bound(1)}},
			},
			SuccessMessage: "Assets staked successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				signature, err := k.Stake(ctx, args.Float("amount"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"result": signature}, nil
			},
		}),
		mustTool(tool.Spec{
			Name:           "solana_get_wallet_address",
			Description:    "Get the wallet address of the agent",
			NoInput:        true,
			SuccessMessage: "Wallet address fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				return map[string]any{"result": k.WalletAddress().String()}, nil
			},
		}),
		mustTool(tool.Spec{
			Name:           "solana_get_tps",
			Description:    "Get the current TPS of the Solana network.",
			NoInput:        true,
			SuccessMessage: "TPS fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				tps, err := k.TPS(ctx)
				if err != nil {
					return nil, err
				}
				return map[string]any{"tps": tps}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_burn_and_close_account",
			Description: `Burn and close a single Solana token account.

Input (JSON string):
{
    "token_account": "public_key_of_the_token_account"
}`,
			Schema: tool.Schema{
				{Name: "token_account", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Token account burned and closed successfully.",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				account, err := parseAddress(args, "token_account")
				if err != nil {
					return nil, err
				}
				result, err := k.BurnAndCloseAccount(ctx, account)
				if err != nil {
					return nil, err
				}
				return map[string]any{"result": result}, nil
			},
		}),
	}
}
