package registry

import (
	"context"

	"github.com/solkit-labs/solkit/kit"
	"github.com/solkit-labs/solkit/tool"
)

func launchpadTools(k kit.Kit) []*tool.Adapter {
	return []*tool.Adapter{
		mustTool(tool.Spec{
			Name: "solana_launch_pump_fun_token",
			Description: `Launch a Pump Fun token on Solana.

Input (JSON string):
{
    "token_name": "MyToken",
    "token_ticker": "MTK",
    "description": "A test token",
    "image_url": "http://example.com/image.png",
    "options": {
        "twitter_url": "...",
        "telegram_url": "...",
        "website_url": "...",
        "initial_liquidity_sol": 0.1,
        "slippage_bps": 100
    } (optional)
}`,
			Schema: tool.Schema{
				{Name: "token_name", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "token_ticker", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "description", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "image_url", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "options", Spec: tool.FieldSpec{Type: tool.KindObject}},
			},
			SuccessMessage: "Pump Fun token launched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				opts := pumpFunOptions(args.Object("options"))
				launch, err := k.LaunchPumpFunToken(ctx,
					args.String("token_name"),
					args.String("token_ticker"),
					args.String("description"),
					args.String("image_url"),
					opts,
				)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"result": map[string]any{
						"signature":    launch.Signature,
						"mint":         launch.Mint.String(),
						"metadata_uri": launch.MetadataURI,
					},
				}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_get_pump_curve_state",
			Description: `Get the pump curve state for a specific bonding curve.

Input (JSON string):
{
    "curve_address": "public_key_of_the_bonding_curve"
}`,
			Schema: tool.Schema{
				{Name: "curve_address", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Pump curve state fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				curve, err := parseAddress(args, "curve_address")
				if err != nil {
					return nil, err
				}
				state, err := k.PumpCurveState(ctx, curve)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"data": map[string]any{
						"virtual_token_reserves": state.VirtualTokenReserves,
						"virtual_sol_reserves":   state.VirtualSOLReserves,
						"real_token_reserves":    state.RealTokenReserves,
						"real_sol_reserves":      state.RealSOLReserves,
						"token_total_supply":     state.TokenTotalSupply,
						"complete":               state.Complete,
					},
				}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_calculate_pump_curve_price",
			Description: `Calculate the price for a bonding curve based on its current state.

Input (JSON string):
{
    "curve_address": "public_key_of_the_bonding_curve"
}`,
			Schema: tool.Schema{
				{Name: "curve_address", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Pump curve price calculated successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				curve, err := parseAddress(args, "curve_address")
				if err != nil {
					return nil, err
				}
				price, err := k.PumpCurvePrice(ctx, curve)
				if err != nil {
					return nil, err
				}
				return map[string]any{"price": price}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_buy_token",
			Description: `Buy a specific amount of tokens using the bonding curve.

Input (JSON string):
{
    "mint": "mint_address_of_the_token",
    "bonding_curve": "bonding_curve_public_key",
    "associated_bonding_curve": "associated_bonding_curve_public_key",
    "amount": 100,
    "slippage": 0.5 (optional),
    "max_retries": 3 (optional)
}`,
			Schema:         curveOrderSchema,
			SuccessMessage: "Buy transaction completed successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				order, err := curveOrder(args)
				if err != nil {
					return nil, err
				}
				signature, err := k.BuyToken(ctx, order)
				if err != nil {
					return nil, err
				}
				return map[string]any{"transaction": signature}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_sell_token",
			Description: `Sell a specific amount of tokens using the bonding curve.

Input (JSON string):
{
    "mint": "mint_address_of_the_token",
    "bonding_curve": "bonding_curve_public_key",
    "associated_bonding_curve": "associated_bonding_curve_public_key",
    "amount": 100,
    "slippage": 0.5 (optional),
    "max_retries": 3 (optional)
}`,
			Schema:         curveOrderSchema,
			SuccessMessage: "Sell transaction completed successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				order, err := curveOrder(args)
				if err != nil {
					return nil, err
				}
				signature, err := k.SellToken(ctx, order)
				if err != nil {
					return nil, err
				}
				return map[string]any{"transaction": signature}, nil
			},
		}),
	}
}

var curveOrderSchema = tool.Schema{
	{Name: "mint", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
	{Name: "bonding_curve", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
	{Name: "associated_bonding_curve", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
	{Name: "amount", Spec: tool.FieldSpec{Type: tool.KindInteger, Required: true, Min: tool.Bound(1)}},
	{Name: "slippage", Spec: tool.FieldSpec{Type: tool.KindFloat, Min: tool.Bound(0), Max: tool.Bound(100)}},
	{Name: "max_retries", Spec: tool.FieldSpec{Type: tool.KindInteger, Min: tool.Bound(1)}},
}

func curveOrder(args tool.Args) (kit.CurveOrder, error) {
	var order kit.CurveOrder
	var err error
	if order.Mint, err = parseAddress(args, "mint"); err != nil {
		return order, err
	}
	if order.BondingCurve, err = parseAddress(args, "bonding_curve"); err != nil {
		return order, err
	}
	if order.AssociatedBondingCurve, err = parseAddress(args, "associated_bonding_curve"); err != nil {
		return order, err
	}
	order.Amount = args.Float("amount")
	order.Slippage = args.FloatOr("slippage", 0.5)
	order.MaxRetries = args.IntOr("max_retries", 3)
	return order, nil
}

func pumpFunOptions(raw map[string]any) kit.PumpFunTokenOptions {
	opts := tool.NewArgs(raw)
	return kit.PumpFunTokenOptions{
		TwitterURL:          opts.String("twitter_url"),
		TelegramURL:         opts.String("telegram_url"),
		WebsiteURL:          opts.String("website_url"),
		InitialLiquiditySOL: opts.Float("initial_liquidity_sol"),
		SlippageBPS:         opts.Int("slippage_bps"),
		PriorityFee:         opts.Float("priority_fee"),
	}
}
