package registry

import (
	"context"

	"github.com/solkit-labs/solkit/kit"
	"github.com/solkit-labs/solkit/tool"
)

func oracleTools(k kit.Kit) []*tool.Adapter {
	return []*tool.Adapter{
		mustTool(tool.Spec{
			Name: "solana_pyth_get_price",
			Description: `Fetch the price of a token using the Pyth Oracle.

Input (JSON string):
{
    "mint_address": "string, the mint address of the token"
}`,
			Schema: tool.Schema{
				{Name: "mint_address", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Price fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				mint, err := parseAddress(args, "mint_address")
				if err != nil {
					return nil, err
				}
				price, err := k.PythPrice(ctx, mint)
				if err != nil {
					return nil, err
				}
				return map[string]any{"data": map[string]any{"price": price}}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "stork_get_price",
			Description: `Fetch the price of an asset using the Stork Oracle.

Input (JSON string):
{
    "asset_id": "string, the asset pair ID to fetch price data for (e.g., SOLUSD)"
}`,
			Schema: tool.Schema{
				{Name: "asset_id", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Price fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				quote, err := k.StorkPrice(ctx, args.String("asset_id"))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"data": map[string]any{
						"price":     quote.Price,
						"timestamp": quote.Timestamp,
					},
				}, nil
			},
		}),
	}
}
