package registry

import (
	"context"

	"github.com/solkit-labs/solkit/kit"
	"github.com/solkit-labs/solkit/tool"
)

func defiTools(k kit.Kit) []*tool.Adapter {
	return []*tool.Adapter{
		mustTool(tool.Spec{
			Name: "lulo_lend",
			Description: `Lends tokens for yields using Lulo.

Input (JSON string):
{
    "mint_address": "string, the SPL mint address of the token",
    "amount": 100.0
}`,
			Schema: tool.Schema{
				{Name: "mint_address", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "amount", Spec: tool.FieldSpec{Type: tool.KindFloat, Required: true, Min: tool.Bound(0)}},
			},
			SuccessMessage: "Asset lent successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				mint, err := parseAddress(args, "mint_address")
				if err != nil {
					return nil, err
				}
				signature, err := k.LuloLend(ctx, mint, args.Float("amount"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"transaction_signature": signature}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "lulo_withdraw",
			Description: `Withdraws tokens for yields using Lulo.

Input (JSON string):
{
    "mint_address": "string, the SPL mint address of the token",
    "amount": 100.0
}`,
			Schema: tool.Schema{
				{Name: "mint_address", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "amount", Spec: tool.FieldSpec{Type: tool.KindFloat, Required: true, Min: tool.Bound(0)}},
			},
			SuccessMessage: "Asset withdrawn successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				mint, err := parseAddress(args, "mint_address")
				if err != nil {
					return nil, err
				}
				signature, err := k.LuloWithdraw(ctx, mint, args.Float("amount"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"transaction_signature": signature}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_create_meteora_dlmm_pool",
			Description: `Create a Meteora DLMM Pool on Solana.

Input (JSON string):
{
    "bin_step": 5,
    "token_a_mint": "token_a_mint_address",
    "token_b_mint": "token_b_mint_address",
    "initial_price": 1.23,
    "price_rounding_up": true,
    "fee_bps": 300,
    "activation_type": "Slot" (options: "Slot", "Timestamp"),
    "has_alpha_vault": false,
    "activation_point": null (optional)
}`,
			Schema: tool.Schema{
				{Name: "bin_step", Spec: tool.FieldSpec{Type: tool.KindInteger, Required: true}},
				{Name: "token_a_mint", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "token_b_mint", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "initial_price", Spec: tool.FieldSpec{Type: tool.KindFloat, Required: true}},
				{Name: "price_rounding_up", Spec: tool.FieldSpec{Type: tool.KindBoolean, Required: true}},
				{Name: "fee_bps", Spec: tool.FieldSpec{Type: tool.KindInteger, Required: true}},
				{Name: "activation_type", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "has_alpha_vault", Spec: tool.FieldSpec{Type: tool.KindBoolean, Required: true}},
				{Name: "activation_point", Spec: tool.FieldSpec{Type: tool.KindInteger}},
			},
			SuccessMessage: "Meteora DLMM pool created successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				activationType, err := kit.ParseActivationType(args.String("activation_type"))
				if err != nil {
					return nil, err
				}
				tokenA, err := parseAddress(args, "token_a_mint")
				if err != nil {
					return nil, err
				}
				tokenB, err := parseAddress(args, "token_b_mint")
				if err != nil {
					return nil, err
				}
				params := kit.MeteoraDLMMPoolParams{
					BinStep:         args.Int("bin_step"),
					TokenAMint:      tokenA,
					TokenBMint:      tokenB,
					InitialPrice:    args.Float("initial_price"),
					PriceRoundingUp: args.Bool("price_rounding_up"),
					FeeBPS:          args.Int("fee_bps"),
					ActivationType:  activationType,
					HasAlphaVault:   args.Bool("has_alpha_vault"),
				}
				if args.Has("activation_point") {
					point := int64(args.Int("activation_point"))
					params.ActivationPoint = &point
				}
				signature, err := k.CreateMeteoraDLMMPool(ctx, params)
				if err != nil {
					return nil, err
				}
				return map[string]any{"result": signature}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "fluxbeam_create_pool",
			Description: `Creates a new pool using FluxBeam.

Input (JSON string):
{
    "token_a": "string, the mint address of the first token",
    "token_a_amount": 100.0,
    "token_b": "string, the mint address of the second token",
    "token_b_amount": 100.0
}`,
			Schema: tool.Schema{
				{Name: "token_a", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "token_a_amount", Spec: tool.FieldSpec{Type: tool.KindFloat, Required: true, Min: tool.Bound(0)}},
				{Name: "token_b", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "token_b_amount", Spec: tool.FieldSpec{Type: tool.KindFloat, Required: true, Min: tool.Bound(0)}},
			},
			SuccessMessage: "Pool created successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				tokenA, err := parseAddress(args, "token_a")
				if err != nil {
					return nil, err
				}
				tokenB, err := parseAddress(args, "token_b")
				if err != nil {
					return nil, err
				}
				signature, err := k.FluxBeamCreatePool(ctx, tokenA, args.Float("token_a_amount"), tokenB, args.Float("token_b_amount"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"transaction_signature": signature}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "manifest_create_market",
			Description: `Creates a new market using Manifest.

Input (JSON string):
{
    "base_mint": "string, the base mint address",
    "quote_mint": "string, the quote mint address"
}`,
			Schema: tool.Schema{
				{Name: "base_mint", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "quote_mint", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Market created successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				baseMint, err := parseAddress(args, "base_mint")
				if err != nil {
					return nil, err
				}
				quoteMint, err := parseAddress(args, "quote_mint")
				if err != nil {
					return nil, err
				}
				market, err := k.ManifestCreateMarket(ctx, baseMint, quoteMint)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"market_data": map[string]any{
						"market_id": market.MarketID.String(),
						"signature": market.Signature,
					},
				}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "manifest_place_limit_order",
			Description: `Places a limit order on a market using Manifest.

Input (JSON string):
{
    "market_id": "string, the market ID",
    "quantity": 10.0,
    "side": "buy" or "sell",
    "price": 1.5
}`,
			Schema: tool.Schema{
				{Name: "market_id", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "quantity", Spec: tool.FieldSpec{Type: tool.KindFloat, Required: true, Min: tool.Bound(0)}},
				{Name: "side", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "price", Spec: tool.FieldSpec{Type: tool.KindFloat, Required: true, Min: tool.Bound(0)}},
			},
			SuccessMessage: "Limit order placed successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				marketID, err := parseAddress(args, "market_id")
				if err != nil {
					return nil, err
				}
				signature, err := k.ManifestPlaceLimitOrder(ctx, marketID, args.Float("quantity"), args.String("side"), args.Float("price"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"order_details": signature}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "manifest_cancel_all_orders",
			Description: `Cancels all open orders for a given market using Manifest.

Input (JSON string):
{
    "market_id": "string, the market ID"
}`,
			Schema: tool.Schema{
				{Name: "market_id", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "All orders canceled successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				marketID, err := parseAddress(args, "market_id")
				if err != nil {
					return nil, err
				}
				result, err := k.ManifestCancelAllOrders(ctx, marketID)
				if err != nil {
					return nil, err
				}
				return map[string]any{"cancellation_result": result}, nil
			},
		}),
	}
}
