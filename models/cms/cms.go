package cms

// Models returns every table in migration order
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&News{},
		&Comment{},
		&Page{},
		&AuditLog{},
	}
}
