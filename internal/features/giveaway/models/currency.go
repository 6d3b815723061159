package models

// Currencies holds the quantity offered per Path of Exile currency.
// Embedded in Giveaway so the JSON keys stay flat.
type Currencies struct {
	DivineOrb          int `json:"divine_orb"`
	ExaltedOrb         int `json:"exalted_orb"`
	ChaosOrb           int `json:"chaos_orb"`
	MirrorOfKalandra   int `json:"mirror_of_kalandra"`
	OrbOfAlchemy       int `json:"orb_of_alchemy"`
	OrbOfAugmentation  int `json:"orb_of_augmentation"`
	OrbOfChance        int `json:"orb_of_chance"`
	OrbOfTransmutation int `json:"orb_of_transmutation"`
	RegalOrb           int `json:"regal_orb"`
	VaalOrb            int `json:"vaal_orb"`
	AnnulmentOrb       int `json:"annulment_orb"`
}

// CurrencyInfo describes one catalogue currency.
type CurrencyInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type CurrencyAmount struct {
	CurrencyInfo
	Quantity int `json:"quantity"`
}

// CurrencyCatalog lists the supported currencies in display order.
var CurrencyCatalog = []CurrencyInfo{
	{Key: "divine_orb", Name: "Divine Orb"},
	{Key: "exalted_orb", Name: "Exalted Orb"},
	{Key: "chaos_orb", Name: "Chaos Orb"},
	{Key: "mirror_of_kalandra", Name: "Mirror of Kalandra"},
	{Key: "orb_of_alchemy", Name: "Orb of Alchemy"},
	{Key: "orb_of_augmentation", Name: "Orb of Augmentation"},
	{Key: "orb_of_chance", Name: "Orb of Chance"},
	{Key: "orb_of_transmutation", Name: "Orb of Transmutation"},
	{Key: "regal_orb", Name: "Regal Orb"},
	{Key: "vaal_orb", Name: "Vaal Orb"},
	{Key: "annulment_orb", Name: "Annulment Orb"},
}

// Quantities returns pointers to every quantity keyed by catalogue key.
func (c *Currencies) Quantities() map[string]*int {
	return map[string]*int{
		"divine_orb":           &c.DivineOrb,
		"exalted_orb":          &c.ExaltedOrb,
		"chaos_orb":            &c.ChaosOrb,
		"mirror_of_kalandra":   &c.MirrorOfKalandra,
		"orb_of_alchemy":       &c.OrbOfAlchemy,
		"orb_of_augmentation":  &c.OrbOfAugmentation,
		"orb_of_chance":        &c.OrbOfChance,
		"orb_of_transmutation": &c.OrbOfTransmutation,
		"regal_orb":            &c.RegalOrb,
		"vaal_orb":             &c.VaalOrb,
		"annulment_orb":        &c.AnnulmentOrb,
	}
}

// Active returns the currencies with a positive quantity in catalogue order.
func (c Currencies) Active() []CurrencyAmount {
	quantities := c.Quantities()
	active := make([]CurrencyAmount, 0, len(CurrencyCatalog))
	for _, info := range CurrencyCatalog {
		if q := *quantities[info.Key]; q > 0 {
			active = append(active, CurrencyAmount{CurrencyInfo: info, Quantity: q})
		}
	}
	return active
}
