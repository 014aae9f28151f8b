package domain

// Tier enumerates subscription levels.
type Tier string

const (
	TierFree     Tier = "Free"
	TierStandard Tier = "Standard"
	TierPremium  Tier = "Premium"
)

// AuditEntry records a single account event. The log is append-only.
type AuditEntry struct {
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

// StudyProgress tracks position inside the education track. Informational
// only; no core operation mutates it after creation.
type StudyProgress struct {
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	LastLesson string `json:"lastLesson"`
}

// UserIdentity represents the authenticated laboratory account. At most one
// identity is current at a time; its absence means signed-out.
type UserIdentity struct {
	Name          string        `json:"name"`
	TFXID         string        `json:"tfxId"`
	Email         string        `json:"email"`
	Tier          Tier          `json:"tier"`
	ExpiryDate    string        `json:"expiryDate"`
	AuditLogs     []AuditEntry  `json:"auditLogs"`
	StudyProgress StudyProgress `json:"studyProgress"`
}

// IsFree reports whether the identity is on the free tier.
func (u UserIdentity) IsFree() bool {
	return u.Tier == TierFree
}

// CanUseAIAnalysis is the single capability gate of the platform: the AI
// analyzer is closed to signed-out visitors and free-tier accounts.
func CanUseAIAnalysis(u *UserIdentity) bool {
	if u == nil {
		return false
	}
	return !u.IsFree()
}
