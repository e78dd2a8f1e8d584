package config

const (
	DefaultStartID           = 1
	DefaultEndID             = 50
	DefaultCardsPerAccordion = 250
	DefaultPhoneticColumn    = "IPA"
	DefaultPDFTimeoutSeconds = 120
)

// Default returns the optional settings filled in. Required fields
// (target language, wordlist, image directory and size) stay empty.
func Default() *Config {
	return &Config{
		StartID:             DefaultStartID,
		EndID:               DefaultEndID,
		CardsPerAccordion:   defaultCardsPerAccordion(DefaultEndID),
		PhoneticColumn:      DefaultPhoneticColumn,
		PhoneticPlaceholder: DefaultPhoneticColumn,
		OutputDir:           ".",
		Variants:            defaultVariants(),
		PDF: PDF{
			Variant:        VariantImage,
			TimeoutSeconds: DefaultPDFTimeoutSeconds,
		},
	}
}

func defaultVariants() []Variant {
	return []Variant{VariantImage, VariantNoImage, VariantBlank}
}

// defaultCardsPerAccordion caps DefaultCardsPerAccordion at endID, so a
// config that leaves the group size unset always validates.
func defaultCardsPerAccordion(endID int) int {
	if endID > 0 && endID < DefaultCardsPerAccordion {
		return endID
	}
	return DefaultCardsPerAccordion
}
