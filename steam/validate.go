package steam

const (
	DefaultRecentCount = 3
	DefaultTopCount    = 3

	MinCount    = 1
	MaxTopCount = 10

	steamIDLength = 17
)

// ValidateSteamID reports whether id looks like a 64 bit Steam ID, which is
// always exactly 17 ASCII digits.
func ValidateSteamID(id string) error {
	if len(id) != steamIDLength {
		return validationError(ERR_INVALID_STEAM_ID)
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return validationError(ERR_INVALID_STEAM_ID)
		}
	}
	return nil
}

func validateTopCount(count int) error {
	if count < MinCount || count > MaxTopCount {
		return validationError(ERR_TOP_COUNT_RANGE)
	}
	return nil
}

func validateRecentCount(count int) error {
	if count < MinCount {
		return validationError(ERR_RECENT_COUNT_RANGE)
	}
	return nil
}
