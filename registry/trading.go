package registry

import (
	"context"

	"github.com/solkit-labs/solkit/kit"
	"github.com/solkit-labs/solkit/tool"
)

func tradingTools(k kit.Kit) []*tool.Adapter {
	return []*tool.Adapter{
		mustTool(tool.Spec{
			Name: "solana_trade",
			Description: `Execute a trade on Solana.

Input (JSON string):
{
    "output_mint": "output_mint_address",
    "input_amount": 100,
    "input_mint": "input_mint_address" (optional),
    "slippage_bps": 100 (optional)
}`,
			Schema: tool.Schema{
				{Name: "output_mint", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "input_amount", Spec: tool.FieldSpec{Type: tool.KindInteger, Required: true, Min: tool.Bound(1)}},
				{Name: "input_mint", Spec: tool.FieldSpec{Type: tool.KindString}},
				{Name: "slippage_bps", Spec: tool.FieldSpec{Type: tool.KindInteger}},
			},
			SuccessMessage: "Trade executed successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				outputMint, err := parseAddress(args, "output_mint")
				if err != nil {
					return nil, err
				}
				inputMint, err := optionalAddress(args, "input_mint")
				if err != nil {
					return nil, err
				}
				signature, err := k.Trade(ctx, outputMint, args.Float("input_amount"), inputMint, args.IntOr("slippage_bps", 100))
				if err != nil {
					return nil, err
				}
				return map[string]any{"transaction": signature}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_fetch_price",
			Description: `Fetch the price of a given token in USDC.

Input (JSON string):
{
    "token_id": "mint_address_of_the_token"
}`,
			Schema: tool.Schema{
				{Name: "token_id", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Price fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				mint, err := parseAddress(args, "token_id")
				if err != nil {
					return nil, err
				}
				price, err := k.FetchPrice(ctx, mint)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"tokenId":     args.String("token_id"),
					"priceInUSDC": price,
				}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_token_data",
			Description: `Get the token data for a given token mint address.

Input (JSON string):
{
    "mint_address": "So11111111111111111111111111111111111111112"
}`,
			Schema: tool.Schema{
				{Name: "mint_address", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Token data fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				mint, err := parseAddress(args, "mint_address")
				if err != nil {
					return nil, err
				}
				data, err := k.TokenDataByAddress(ctx, mint)
				if err != nil {
					return nil, err
				}
				return map[string]any{"tokenData": data}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_token_data_by_ticker",
			Description: `Get the token data for a given token ticker.

Input (JSON string):
{
    "ticker": "USDC"
}`,
			Schema: tool.Schema{
				{Name: "ticker", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Token data fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				data, err := k.TokenDataByTicker(ctx, args.String("ticker"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"tokenData": data}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "raydium_buy",
			Description: `Buy tokens using Raydium's swap functionality.

Input (JSON string):
{
    "pair_address": "address_of_the_trading_pair",
    "sol_in": 0.01 (optional, defaults to 0.01),
    "slippage": 5 (optional, defaults to 5)
}`,
			Schema: tool.Schema{
				{Name: "pair_address", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "sol_in", Spec: tool.FieldSpec{Type: tool.KindFloat, Min: tool.Bound(0)}},
				{Name: "slippage", Spec: tool.FieldSpec{Type: tool.KindInteger, Min: tool.Bound(0), Max: tool.Bound(100)}},
			},
			SuccessMessage: "Buy transaction completed successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				pairAddress := args.String("pair_address")
				solIn := args.FloatOr("sol_in", 0.01)
				slippage := args.IntOr("slippage", 5)
				signature, err := k.RaydiumBuy(ctx, pairAddress, solIn, slippage)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"pair_address": pairAddress,
					"sol_in":       solIn,
					"slippage":     slippage,
					"transaction":  signature,
				}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "raydium_sell",
			Description: `Sell tokens using Raydium's swap functionality.

Input (JSON string):
{
    "pair_address": "address_of_the_trading_pair",
    "percentage": 100 (optional, defaults to 100),
    "slippage": 5 (optional, defaults to 5)
}`,
			Schema: tool.Schema{
				{Name: "pair_address", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "percentage", Spec: tool.FieldSpec{Type: tool.KindInteger, Min: tool.Bound(0), Max: tool.Bound(100)}},
				{Name: "slippage", Spec: tool.FieldSpec{Type: tool.KindInteger, Min: tool.Bound(0), Max: tool.Bound(100)}},
			},
			SuccessMessage: "Sell transaction completed successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				pairAddress := args.String("pair_address")
				percentage := args.IntOr("percentage", 100)
				slippage := args.IntOr("slippage", 5)
				signature, err := k.RaydiumSell(ctx, pairAddress, percentage, slippage)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"pair_address": pairAddress,
					"percentage":   percentage,
					"slippage":     slippage,
					"transaction":  signature,
				}, nil
			},
		}),
	}
}
