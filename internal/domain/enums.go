package domain

// FieldType is the input type of a dynamic field.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeEmail       FieldType = "email"
	FieldTypeURL         FieldType = "url"
	FieldTypeTextarea    FieldType = "textarea"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiselect FieldType = "multiselect"
	FieldTypeBoolean     FieldType = "boolean"
)

func (t FieldType) String() string { return string(t) }

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypeURL, FieldTypeTextarea,
		FieldTypeSelect, FieldTypeMultiselect, FieldTypeBoolean:
		return true
	}
	return false
}

// HasOptions reports whether fields of this type carry an options list.
func (t FieldType) HasOptions() bool {
	return t == FieldTypeSelect || t == FieldTypeMultiselect
}

// EntityKind scopes modules and fields to one kind of catalogued entity.
type EntityKind string

const (
	EntityKindSystem  EntityKind = "system"
	EntityKindCompany EntityKind = "company"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindSystem, EntityKindCompany:
		return true
	}
	return false
}

// SystemStatus is the review lifecycle state of a catalogued system.
type SystemStatus string

const (
	SystemStatusDraft     SystemStatus = "draft"
	SystemStatusPending   SystemStatus = "pending"
	SystemStatusPublished SystemStatus = "published"
	SystemStatusRejected  SystemStatus = "rejected"
)

func (s SystemStatus) String() string { return string(s) }

func (s SystemStatus) IsValid() bool {
	switch s {
	case SystemStatusDraft, SystemStatusPending, SystemStatusPublished, SystemStatusRejected:
		return true
	}
	return false
}

// ReviewDecision is the outcome a reviewer records for a pending system.
type ReviewDecision string

const (
	ReviewDecisionPublish ReviewDecision = "publish"
	ReviewDecisionReject  ReviewDecision = "reject"
)

func (d ReviewDecision) IsValid() bool {
	return d == ReviewDecisionPublish || d == ReviewDecisionReject
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleEditor   UserRole = "editor"
	UserRoleReviewer UserRole = "reviewer"
	UserRoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleEditor, UserRoleReviewer, UserRoleAdmin:
		return true
	}
	return false
}

// IsPrivileged reports whether the role may publish and review systems.
func (r UserRole) IsPrivileged() bool {
	return r == UserRoleReviewer || r == UserRoleAdmin
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeSystem   EntityType = "SYSTEM"
	EntityTypeModule   EntityType = "MODULE"
	EntityTypeField    EntityType = "FIELD"
	EntityTypeGlossary EntityType = "GLOSSARY"
	EntityTypeUser     EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
	AuditActionReview AuditAction = "REVIEW"
)

func (a AuditAction) String() string { return string(a) }
