package registry

import (
	"context"
	"sync"

	"github.com/solkit-labs/solkit/kit"
)

// stubKit records every delegate call and returns canned values. Individual
// tests override err to force failures.
type stubKit struct {
	mu    sync.Mutex
	calls map[string]int
	err   error

	lastTransfer struct {
		To     kit.PublicKey
		Amount float64
		Mint   *kit.PublicKey
	}
	lastCurveOrder    kit.CurveOrder
	lastWebhookParams kit.WebhookParams
	lastRaydiumBuy    struct {
		PairAddress string
		SolIn       float64
		Slippage    int
	}
	lastMeteoraParams kit.MeteoraDLMMPoolParams
}

func newStubKit() *stubKit {
	return &stubKit{calls: make(map[string]int)}
}

func (s *stubKit) record(method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[method]++
	return s.err
}

func (s *stubKit) callCount(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

func (s *stubKit) totalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

func (s *stubKit) Balance(ctx context.Context, mint *kit.PublicKey) (float64, error) {
	return 42.5, s.record("Balance")
}

func (s *stubKit) Transfer(ctx context.Context, to kit.PublicKey, amount float64, mint *kit.PublicKey) (string, error) {
	s.lastTransfer.To = to
	s.lastTransfer.Amount = amount
	s.lastTransfer.Mint = mint
	return "sig-transfer", s.record("Transfer")
}

func (s *stubKit) Stake(ctx context.Context, amount float64) (string, error) {
	return "sig-stake", s.record("Stake")
}

func (s *stubKit) DeployToken(ctx context.Context, decimals int) (kit.TokenDeployment, error) {
	return kit.TokenDeployment{}, s.record("DeployToken")
}

func (s *stubKit) RequestFaucetFunds(ctx context.Context) (string, error) {
	return "sig-faucet", s.record("RequestFaucetFunds")
}

func (s *stubKit) WalletAddress() kit.PublicKey {
	s.record("WalletAddress")
	return kit.PublicKey{}
}

func (s *stubKit) TPS(ctx context.Context) (float64, error) {
	return 3200, s.record("TPS")
}

func (s *stubKit) BurnAndCloseAccount(ctx context.Context, account kit.PublicKey) (string, error) {
	return "sig-burn", s.record("BurnAndCloseAccount")
}

func (s *stubKit) Trade(ctx context.Context, outputMint kit.PublicKey, inputAmount float64, inputMint *kit.PublicKey, slippageBPS int) (string, error) {
	return "sig-trade", s.record("Trade")
}

func (s *stubKit) FetchPrice(ctx context.Context, mint kit.PublicKey) (float64, error) {
	return 1.25, s.record("FetchPrice")
}

func (s *stubKit) TokenDataByAddress(ctx context.Context, mint kit.PublicKey) (map[string]any, error) {
	return map[string]any{"symbol": "SOL"}, s.record("TokenDataByAddress")
}

func (s *stubKit) TokenDataByTicker(ctx context.Context, ticker string) (map[string]any, error) {
	return map[string]any{"symbol": ticker}, s.record("TokenDataByTicker")
}

func (s *stubKit) RaydiumBuy(ctx context.Context, pairAddress string, solIn float64, slippage int) (string, error) {
	s.lastRaydiumBuy.PairAddress = pairAddress
	s.lastRaydiumBuy.SolIn = solIn
	s.lastRaydiumBuy.Slippage = slippage
	return "sig-raydium-buy", s.record("RaydiumBuy")
}

func (s *stubKit) RaydiumSell(ctx context.Context, pairAddress string, percentage int, slippage int) (string, error) {
	return "sig-raydium-sell", s.record("RaydiumSell")
}

func (s *stubKit) LaunchPumpFunToken(ctx context.Context, name, ticker, description, imageURL string, options kit.PumpFunTokenOptions) (kit.PumpFunLaunch, error) {
	return kit.PumpFunLaunch{Signature: "sig-launch"}, s.record("LaunchPumpFunToken")
}

func (s *stubKit) PumpCurveState(ctx context.Context, curve kit.PublicKey) (kit.BondingCurveState, error) {
	return kit.BondingCurveState{TokenTotalSupply: 1000}, s.record("PumpCurveState")
}

func (s *stubKit) PumpCurvePrice(ctx context.Context, curve kit.PublicKey) (float64, error) {
	return 0.0001, s.record("PumpCurvePrice")
}

func (s *stubKit) BuyToken(ctx context.Context, order kit.CurveOrder) (string, error) {
	s.lastCurveOrder = order
	return "sig-buy-token", s.record("BuyToken")
}

func (s *stubKit) SellToken(ctx context.Context, order kit.CurveOrder) (string, error) {
	s.lastCurveOrder = order
	return "sig-sell-token", s.record("SellToken")
}

func (s *stubKit) LuloLend(ctx context.Context, mint kit.PublicKey, amount float64) (string, error) {
	return "sig-lulo-lend", s.record("LuloLend")
}

func (s *stubKit) LuloWithdraw(ctx context.Context, mint kit.PublicKey, amount float64) (string, error) {
	return "sig-lulo-withdraw", s.record("LuloWithdraw")
}

func (s *stubKit) CreateMeteoraDLMMPool(ctx context.Context, params kit.MeteoraDLMMPoolParams) (string, error) {
	s.lastMeteoraParams = params
	return "sig-meteora", s.record("CreateMeteoraDLMMPool")
}

func (s *stubKit) FluxBeamCreatePool(ctx context.Context, tokenA kit.PublicKey, tokenAAmount float64, tokenB kit.PublicKey, tokenBAmount float64) (string, error) {
	return "sig-fluxbeam", s.record("FluxBeamCreatePool")
}

func (s *stubKit) ManifestCreateMarket(ctx context.Context, baseMint, quoteMint kit.PublicKey) (kit.MarketCreation, error) {
	return kit.MarketCreation{Signature: "sig-manifest"}, s.record("ManifestCreateMarket")
}

func (s *stubKit) ManifestPlaceLimitOrder(ctx context.Context, marketID kit.PublicKey, quantity float64, side string, price float64) (string, error) {
	return "sig-limit-order", s.record("ManifestPlaceLimitOrder")
}

func (s *stubKit) ManifestCancelAllOrders(ctx context.Context, marketID kit.PublicKey) (string, error) {
	return "sig-cancel-all", s.record("ManifestCancelAllOrders")
}

func (s *stubKit) DeployCollection(ctx context.Context, name, uri string, royaltyBasisPoints int) (kit.CollectionDeployment, error) {
	return kit.CollectionDeployment{Signature: "sig-collection"}, s.record("DeployCollection")
}

func (s *stubKit) MintCoreNFT(ctx context.Context, collection kit.PublicKey, name, uri string) (kit.NFTMint, error) {
	return kit.NFTMint{Signature: "sig-mint"}, s.record("MintCoreNFT")
}

func (s *stubKit) GetAsset(ctx context.Context, assetID string) (map[string]any, error) {
	return map[string]any{"id": assetID}, s.record("GetAsset")
}

func (s *stubKit) GetAssetsByCreator(ctx context.Context, creator string, limit int) (map[string]any, error) {
	return map[string]any{}, s.record("GetAssetsByCreator")
}

func (s *stubKit) GetAssetsByAuthority(ctx context.Context, authority string, limit int) (map[string]any, error) {
	return map[string]any{}, s.record("GetAssetsByAuthority")
}

func (s *stubKit) GetBalances(ctx context.Context, address string) (map[string]any, error) {
	return map[string]any{"native": 100}, s.record("GetBalances")
}

func (s *stubKit) GetAddressName(ctx context.Context, address string) (string, error) {
	return "example.sol", s.record("GetAddressName")
}

func (s *stubKit) GetNFTEvents(ctx context.Context, accounts []string, types []string) (map[string]any, error) {
	return map[string]any{}, s.record("GetNFTEvents")
}

func (s *stubKit) GetMintlists(ctx context.Context, firstVerifiedCreators []string, verifiedCollectionAddresses []string, limit int) (map[string]any, error) {
	return map[string]any{}, s.record("GetMintlists")
}

func (s *stubKit) GetActiveListings(ctx context.Context, firstVerifiedCreators []string, marketplaces []string, limit int) (map[string]any, error) {
	return map[string]any{}, s.record("GetActiveListings")
}

func (s *stubKit) GetNFTMetadata(ctx context.Context, mintAccounts []string) (map[string]any, error) {
	return map[string]any{}, s.record("GetNFTMetadata")
}

func (s *stubKit) GetParsedTransactions(ctx context.Context, transactions []string, commitment string) (map[string]any, error) {
	return map[string]any{}, s.record("GetParsedTransactions")
}

func (s *stubKit) CreateWebhook(ctx context.Context, params kit.WebhookParams) (map[string]any, error) {
	s.lastWebhookParams = params
	return map[string]any{"webhookID": "wh-1"}, s.record("CreateWebhook")
}

func (s *stubKit) GetAllWebhooks(ctx context.Context) ([]map[string]any, error) {
	return []map[string]any{{"webhookID": "wh-1"}}, s.record("GetAllWebhooks")
}

func (s *stubKit) GetWebhook(ctx context.Context, webhookID string) (map[string]any, error) {
	return map[string]any{"webhookID": webhookID}, s.record("GetWebhook")
}

func (s *stubKit) EditWebhook(ctx context.Context, webhookID string, params kit.WebhookParams) (map[string]any, error) {
	s.lastWebhookParams = params
	return map[string]any{"webhookID": webhookID}, s.record("EditWebhook")
}

func (s *stubKit) DeleteWebhook(ctx context.Context, webhookID string) (bool, error) {
	return true, s.record("DeleteWebhook")
}

func (s *stubKit) PythPrice(ctx context.Context, mint kit.PublicKey) (float64, error) {
	return 148.2, s.record("PythPrice")
}

func (s *stubKit) StorkPrice(ctx context.Context, assetID string) (kit.StorkQuote, error) {
	return kit.StorkQuote{Price: 148.2, Timestamp: 1735689600}, s.record("StorkPrice")
}

func (s *stubKit) ResolveDomain(ctx context.Context, domain string) (kit.PublicKey, error) {
	return kit.PublicKey{}, s.record("ResolveDomain")
}

func (s *stubKit) RegisterDomain(ctx context.Context, name string, spaceKB int) (string, error) {
	return "txn-register", s.record("RegisterDomain")
}

func (s *stubKit) GetAllDomainsForOwner(ctx context.Context, owner kit.PublicKey) ([]string, error) {
	return []string{"example.sol"}, s.record("GetAllDomainsForOwner")
}

func (s *stubKit) GetTipAccounts(ctx context.Context) ([]string, error) {
	return []string{"tip-1", "tip-2"}, s.record("GetTipAccounts")
}

func (s *stubKit) GetRandomTipAccount(ctx context.Context) (string, error) {
	return "tip-1", s.record("GetRandomTipAccount")
}

func (s *stubKit) GetBundleStatuses(ctx context.Context, bundleIDs []string) (map[string]any, error) {
	return map[string]any{}, s.record("GetBundleStatuses")
}

func (s *stubKit) SendBundle(ctx context.Context, encodedTransactions []string) (string, error) {
	return "bundle-1", s.record("SendBundle")
}

var _ kit.Kit = (*stubKit)(nil)
