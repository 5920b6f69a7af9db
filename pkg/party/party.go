package party

// UnnamedDisplayName is shown for parties and crowdfunds without a display name.
const UnnamedDisplayName = "Unnamed"

// Party represents an indexed party as returned by name search.
type Party struct {
	NetworkID   int64
	Address     string
	DisplayName string
}

// Crowdfund represents an indexed crowdfund as returned by name search.
// PartyAddress is empty for GENESIS-era crowdfunds that predate the on-chain party link.
type Crowdfund struct {
	NetworkID    int64
	Address      string
	PartyAddress string
	DisplayName  string
}

// CrowdfundToParty maps a crowdfund address, keyed as returned by the source,
// to the address of the party it created.
type CrowdfundToParty map[string]string

// SearchResult is a single reconciled search row.
type SearchResult struct {
	Key              string  `json:"key"`
	Name             string  `json:"name"`
	NetworkName      string  `json:"networkName"`
	PartyAddress     *string `json:"partyAddress"`
	CrowdfundAddress *string `json:"crowdfundAddress"`
}

// Link is a resolved crowdfund -> party relation.
type Link struct {
	NetworkID        int64
	CrowdfundAddress string
	PartyAddress     string
}

// NameOrUnnamed returns name, or UnnamedDisplayName when name is empty.
func NameOrUnnamed(name string) string {
	if name == "" {
		return UnnamedDisplayName
	}
	return name
}
