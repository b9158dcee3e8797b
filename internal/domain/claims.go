package domain

// Claims is the authenticated identity carried by a session token. IDs are
// hex-encoded ObjectIDs; OrgName is the organization name at issue time and
// may be stale after a rename, so authorization re-checks it against the
// registry.
type Claims struct {
	AdminID string `json:"admin_id"`
	OrgID   string `json:"org_id"`
	OrgName string `json:"org_name"`
}
