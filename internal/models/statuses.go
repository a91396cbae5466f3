package models

type UserRole string
type ModerationStatus string
type PremiumStatus string
type MediaKind string

const (
	UserRoleArtist    UserRole = "artist"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"

	// Moderation gate shared by users and jobs. Everything starts pending;
	// only approved and rejected are reachable from there (and from each other).
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"

	// Recruiter premium access, independent of moderation.
	PremiumNone    PremiumStatus = "none"
	PremiumGranted PremiumStatus = "granted"
	PremiumDenied  PremiumStatus = "denied"

	MediaKindPhoto MediaKind = "photo"
	MediaKindVideo MediaKind = "video"
)

// ValidModerationDecision reports whether s is an admin-assignable state.
// Pending is the initial state only; it is never assigned by a decision.
func ValidModerationDecision(s ModerationStatus) bool {
	return s == ModerationApproved || s == ModerationRejected
}

// ValidPremiumDecision reports whether s is an admin-assignable premium state.
func ValidPremiumDecision(s PremiumStatus) bool {
	return s == PremiumGranted || s == PremiumDenied
}

// ValidMediaKind reports whether k names a user media collection.
func ValidMediaKind(k MediaKind) bool {
	return k == MediaKindPhoto || k == MediaKindVideo
}
