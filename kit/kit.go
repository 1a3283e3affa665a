package kit

import "context"

// TokenDeployment reports a freshly created SPL mint.
type TokenDeployment struct {
	Mint PublicKey
}

// PumpFunTokenOptions carries the optional metadata and trade parameters for
// a Pump.fun launch. Zero values mean the launchpad defaults apply.
type PumpFunTokenOptions struct {
	TwitterURL          string
	TelegramURL         string
	WebsiteURL          string
	InitialLiquiditySOL float64
	SlippageBPS         int
	PriorityFee         float64
}

// PumpFunLaunch reports a completed Pump.fun token launch.
type PumpFunLaunch struct {
	Signature   string
	Mint        PublicKey
	MetadataURI string
}

// BondingCurveState is the decoded Pump.fun bonding-curve account.
type BondingCurveState struct {
	VirtualTokenReserves uint64
	VirtualSOLReserves   uint64
	RealTokenReserves    uint64
	RealSOLReserves      uint64
	TokenTotalSupply     uint64
	Complete             bool
}

// MarketCreation reports a freshly created Manifest market.
type MarketCreation struct {
	MarketID  PublicKey
	Signature string
}

// CollectionDeployment reports a freshly created Metaplex collection.
type CollectionDeployment struct {
	Collection PublicKey
	Signature  string
}

// NFTMint reports a freshly minted Metaplex Core asset.
type NFTMint struct {
	Mint      PublicKey
	Signature string
}

// StorkQuote is one price sample from the Stork oracle.
type StorkQuote struct {
	Price     float64
	Timestamp int64
}

// Wallet covers account funds, staking, and chain health.
type Wallet interface {
	// Balance returns the SOL balance when mint is nil, otherwise the SPL
	// token balance for mint.
	Balance(ctx context.Context, mint *PublicKey) (float64, error)
	Transfer(ctx context.Context, to PublicKey, amount float64, mint *PublicKey) (string, error)
	Stake(ctx context.Context, amount float64) (string, error)
	DeployToken(ctx context.Context, decimals int) (TokenDeployment, error)
	RequestFaucetFunds(ctx context.Context) (string, error)
	WalletAddress() PublicKey
	TPS(ctx context.Context) (float64, error)
	BurnAndCloseAccount(ctx context.Context, account PublicKey) (string, error)
}

// Trading covers swaps, price lookups, and token metadata.
type Trading interface {
	Trade(ctx context.Context, outputMint PublicKey, inputAmount float64, inputMint *PublicKey, slippageBPS int) (string, error)
	FetchPrice(ctx context.Context, mint PublicKey) (float64, error)
	TokenDataByAddress(ctx context.Context, mint PublicKey) (map[string]any, error)
	TokenDataByTicker(ctx context.Context, ticker string) (map[string]any, error)
	RaydiumBuy(ctx context.Context, pairAddress string, solIn float64, slippage int) (string, error)
	RaydiumSell(ctx context.Context, pairAddress string, percentage int, slippage int) (string, error)
}

// Launchpad covers Pump.fun launches and bonding-curve trading.
type Launchpad interface {
	LaunchPumpFunToken(ctx context.Context, name, ticker, description, imageURL string, options PumpFunTokenOptions) (PumpFunLaunch, error)
	PumpCurveState(ctx context.Context, curve PublicKey) (BondingCurveState, error)
	PumpCurvePrice(ctx context.Context, curve PublicKey) (float64, error)
	BuyToken(ctx context.Context, order CurveOrder) (string, error)
	SellToken(ctx context.Context, order CurveOrder) (string, error)
}

// CurveOrder parameterizes a buy or sell against a Pump.fun bonding curve.
type CurveOrder struct {
	Mint                   PublicKey
	BondingCurve           PublicKey
	AssociatedBondingCurve PublicKey
	Amount                 float64
	Slippage               float64
	MaxRetries             int
}

// DeFi covers lending and pool/market creation across integrated protocols.
type DeFi interface {
	LuloLend(ctx context.Context, mint PublicKey, amount float64) (string, error)
	LuloWithdraw(ctx context.Context, mint PublicKey, amount float64) (string, error)
	CreateMeteoraDLMMPool(ctx context.Context, params MeteoraDLMMPoolParams) (string, error)
	FluxBeamCreatePool(ctx context.Context, tokenA PublicKey, tokenAAmount float64, tokenB PublicKey, tokenBAmount float64) (string, error)
	ManifestCreateMarket(ctx context.Context, baseMint, quoteMint PublicKey) (MarketCreation, error)
	ManifestPlaceLimitOrder(ctx context.Context, marketID PublicKey, quantity float64, side string, price float64) (string, error)
	ManifestCancelAllOrders(ctx context.Context, marketID PublicKey) (string, error)
}

// MeteoraDLMMPoolParams parameterizes Meteora DLMM pool creation.
// ActivationPoint is a slot or unix timestamp depending on ActivationType;
// nil means immediate activation.
type MeteoraDLMMPoolParams struct {
	BinStep         int
	TokenAMint      PublicKey
	TokenBMint      PublicKey
	InitialPrice    float64
	PriceRoundingUp bool
	FeeBPS          int
	ActivationType  ActivationType
	HasAlphaVault   bool
	ActivationPoint *int64
}

// NFT covers Metaplex collection and asset operations.
type NFT interface {
	DeployCollection(ctx context.Context, name, uri string, royaltyBasisPoints int) (CollectionDeployment, error)
	MintCoreNFT(ctx context.Context, collection PublicKey, name, uri string) (NFTMint, error)
	GetAsset(ctx context.Context, assetID string) (map[string]any, error)
	GetAssetsByCreator(ctx context.Context, creator string, limit int) (map[string]any, error)
	GetAssetsByAuthority(ctx context.Context, authority string, limit int) (map[string]any, error)
}

// Helius covers the Helius enhanced-API surface, including webhook
// management. Responses are passed through as the API returned them.
type Helius interface {
	GetBalances(ctx context.Context, address string) (map[string]any, error)
	GetAddressName(ctx context.Context, address string) (string, error)
	GetNFTEvents(ctx context.Context, accounts []string, types []string) (map[string]any, error)
	GetMintlists(ctx context.Context, firstVerifiedCreators []string, verifiedCollectionAddresses []string, limit int) (map[string]any, error)
	GetActiveListings(ctx context.Context, firstVerifiedCreators []string, marketplaces []string, limit int) (map[string]any, error)
	GetNFTMetadata(ctx context.Context, mintAccounts []string) (map[string]any, error)
	GetParsedTransactions(ctx context.Context, transactions []string, commitment string) (map[string]any, error)
	CreateWebhook(ctx context.Context, params WebhookParams) (map[string]any, error)
	GetAllWebhooks(ctx context.Context) ([]map[string]any, error)
	GetWebhook(ctx context.Context, webhookID string) (map[string]any, error)
	EditWebhook(ctx context.Context, webhookID string, params WebhookParams) (map[string]any, error)
	DeleteWebhook(ctx context.Context, webhookID string) (bool, error)
}

// WebhookParams configures a Helius webhook.
type WebhookParams struct {
	WebhookURL       string
	TransactionTypes []string
	AccountAddresses []string
	WebhookType      string
	TxnStatus        string
}

// Oracle covers spot price feeds.
type Oracle interface {
	PythPrice(ctx context.Context, mint PublicKey) (float64, error)
	StorkPrice(ctx context.Context, assetID string) (StorkQuote, error)
}

// Domains covers SNS (.sol) name resolution and registration.
type Domains interface {
	ResolveDomain(ctx context.Context, domain string) (PublicKey, error)
	RegisterDomain(ctx context.Context, name string, spaceKB int) (string, error)
	GetAllDomainsForOwner(ctx context.Context, owner PublicKey) ([]string, error)
}

// Jito covers bundle submission through the Jito block engine.
type Jito interface {
	GetTipAccounts(ctx context.Context) ([]string, error)
	GetRandomTipAccount(ctx context.Context) (string, error)
	GetBundleStatuses(ctx context.Context, bundleIDs []string) (map[string]any, error)
	SendBundle(ctx context.Context, encodedTransactions []string) (string, error)
}

// Kit is the full agent-kit surface the adapter layer binds against.
// Implementations own all networking, signing, and retry behavior.
type Kit interface {
	Wallet
	Trading
	Launchpad
	DeFi
	NFT
	Helius
	Oracle
	Domains
	Jito
}
