package registry

import (
	"github.com/solkit-labs/solkit/kit"
	"github.com/solkit-labs/solkit/tool"
)

// Tools returns every adapter bound to k, in declaration order. One entry
// per remote operation; the adapter specs live in the per-category files.
func Tools(k kit.Kit) []*tool.Adapter {
	var adapters []*tool.Adapter
	adapters = append(adapters, walletTools(k)...)
	adapters = append(adapters, tradingTools(k)...)
	adapters = append(adapters, launchpadTools(k)...)
	adapters = append(adapters, defiTools(k)...)
	adapters = append(adapters, nftTools(k)...)
	adapters = append(adapters, heliusTools(k)...)
	adapters = append(adapters, oracleTools(k)...)
	adapters = append(adapters, domainTools(k)...)
	adapters = append(adapters, jitoTools(k)...)
	return adapters
}

// mustTool converts a declaration error into a panic. Specs are static, so a
// bad one is a bug caught by the registry tests, never a runtime condition.
func mustTool(spec tool.Spec) *tool.Adapter {
	adapter, err := tool.New(spec)
	if err != nil {
		panic(err)
	}
	return adapter
}

func parseAddress(args tool.Args, field string) (kit.PublicKey, error) {
	return kit.ParseAddress(args.String(field))
}

func optionalAddress(args tool.Args, field string) (*kit.PublicKey, error) {
	if !args.Has(field) {
		return nil, nil
	}
	key, err := kit.ParseAddress(args.String(field))
	if err != nil {
		return nil, err
	}
	return &key, nil
}
