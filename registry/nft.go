package registry

import (
	"context"

	"github.com/solkit-labs/solkit/kit"
	"github.com/solkit-labs/solkit/tool"
)

func nftTools(k kit.Kit) []*tool.Adapter {
	return []*tool.Adapter{
		mustTool(tool.Spec{
			Name: "solana_deploy_collection",
			Description: `Deploys an NFT collection using the Metaplex program.

Input (JSON string):
{
    "name": "string, the name of the NFT collection",
    "uri": "string, the metadata URI",
    "royalty_basis_points": 500
}`,
			Schema: tool.Schema{
				{Name: "name", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "uri", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "royalty_basis_points", Spec: tool.FieldSpec{Type: tool.KindInteger, Required: true, Min: tool.Bound(0), Max: tool.Bound(10000)}},
			},
			SuccessMessage: "Collection deployed successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				deployment, err := k.DeployCollection(ctx, args.String("name"), args.String("uri"), args.Int("royalty_basis_points"))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"collection":  deployment.Collection.String(),
					"transaction": deployment.Signature,
				}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_mint_metaplex_core_nft",
			Description: `Mints an NFT using the Metaplex Core program.

Input (JSON string):
{
    "collection_mint": "string, the collection mint's public key",
    "name": "string, the name of the NFT",
    "uri": "string, the metadata URI"
}`,
			Schema: tool.Schema{
				{Name: "collection_mint", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "name", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "uri", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "NFT minted successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				collection, err := parseAddress(args, "collection_mint")
				if err != nil {
					return nil, err
				}
				mint, err := k.MintCoreNFT(ctx, collection, args.String("name"), args.String("uri"))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"mint":        mint.Mint.String(),
					"transaction": mint.Signature,
				}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_get_metaplex_asset",
			Description: `Fetches detailed information about a specific Metaplex asset.

Input (JSON string):
{
    "asset_id": "string, the unique identifier of the asset"
}`,
			Schema: tool.Schema{
				{Name: "asset_id", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
			},
			SuccessMessage: "Asset fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				asset, err := k.GetAsset(ctx, args.String("asset_id"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"value": asset}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_get_metaplex_assets_by_creator",
			Description: `Fetches assets created by a specific creator.

Input (JSON string):
{
    "creator": "string, the creator's public key",
    "limit": 10 (optional)
}`,
			Schema: tool.Schema{
				{Name: "creator", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "limit", Spec: tool.FieldSpec{Type: tool.KindInteger, Min: tool.Bound(1)}},
			},
			SuccessMessage: "Assets fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				assets, err := k.GetAssetsByCreator(ctx, args.String("creator"), args.Int("limit"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"value": assets}, nil
			},
		}),
		mustTool(tool.Spec{
			Name: "solana_get_metaplex_assets_by_authority",
			Description: `Fetches assets owned by a specific authority.

Input (JSON string):
{
    "authority": "string, the authority's public key",
    "limit": 10 (optional)
}`,
			Schema: tool.Schema{
				{Name: "authority", Spec: tool.FieldSpec{Type: tool.KindString, Required: true}},
				{Name: "limit", Spec: tool.FieldSpec{Type: tool.KindInteger, Min: tool.Bound(1)}},
			},
			SuccessMessage: "Assets fetched successfully",
			Invoke: func(ctx context.Context, args tool.Args) (map[string]any, error) {
				assets, err := k.GetAssetsByAuthority(ctx, args.String("authority"), args.Int("limit"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"value": assets}, nil
			},
		}),
	}
}
