package constants

// Staff roles, closed set. Each role implies every role below it.
const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleOperator = "Operator"
	RoleViewer   = "Viewer"
)

// Roles lists all known roles from most to least privileged.
var Roles = []string{RoleAdmin, RoleManager, RoleOperator, RoleViewer}

// Login log statuses.
const (
	LoginLogStatusSuccess = "success"
	LoginLogStatusFailed  = "failed"
)

// Login log fail reasons.
const (
	LoginLogFailReasonBadRequest         = "bad_request"
	LoginLogFailReasonInvalidCredentials = "invalid_credentials"
	LoginLogFailReasonAccountLocked      = "account_locked"
	LoginLogFailReasonAccountInactive    = "account_inactive"
	LoginLogFailReasonInternalError      = "internal_error"
)

// Queue names.
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// Async task type names.
const (
	TaskStaffLoginLog      = "staff:login_log"
	TaskStaffAccountLocked = "staff:account_locked"
)

// Runway statuses reported by the sensor generator.
const (
	RunwayStatusOpen   = "OPEN"
	RunwayStatusClosed = "CLOSED"
)
