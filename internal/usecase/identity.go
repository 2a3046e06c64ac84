package usecase

import (
	"strings"

	"github.com/khelsetu/arena/internal/domain/account"
	"github.com/khelsetu/arena/internal/domain/profile"
)

const (
	// UnknownLocation is the placeholder for a location neither record carries.
	UnknownLocation = "Unknown"
	// DefaultAvatarPath is served when neither record has an image.
	DefaultAvatarPath = "/defaultImg.png"
)

// Identity is the merged display view of an athlete, derived on every query
// and never stored.
type Identity struct {
	Name     string
	State    string
	District string
	ImageURL string
}

// ResolveIdentity merges an athlete's account and profile records into one
// display identity. Profile fields win over account fields when both are set.
// District comes only from the account; profiles do not carry one. Either or
// both inputs may be nil — "athlete does not exist" is the caller's decision,
// this always produces an identity.
func ResolveIdentity(acct *account.Record, prof *profile.Record) Identity {
	identity := Identity{
		State:    UnknownLocation,
		District: UnknownLocation,
		ImageURL: DefaultAvatarPath,
	}

	if prof != nil {
		if prof.Name != "" {
			identity.Name = prof.Name
		}
		if prof.State != "" {
			identity.State = prof.State
		}
		if prof.ProfileImage != "" {
			identity.ImageURL = prof.ProfileImage
		}
	}

	if acct != nil {
		if identity.Name == "" {
			identity.Name = accountDisplayName(*acct)
		}
		if identity.State == UnknownLocation && acct.State != "" {
			identity.State = acct.State
		}
		if acct.District != "" {
			identity.District = acct.District
		}
		if identity.ImageURL == DefaultAvatarPath && acct.ImageURL != "" {
			identity.ImageURL = acct.ImageURL
		}
	}

	return identity
}

func accountDisplayName(acct account.Record) string {
	if acct.Name != "" {
		return acct.Name
	}
	return strings.TrimSpace(strings.Join(strings.Fields(acct.FirstName+" "+acct.LastName), " "))
}
