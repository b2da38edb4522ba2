package entity

// MirrorStatus estado de la base de datos espejo que reporta el backend.
// El panel solo lo inspecciona; la réplica vive del lado del servidor.
type MirrorStatus struct {
	Dialect            string   `json:"dialect"`
	MirrorMode         string   `json:"mirror_mode"`
	MirrorSchema       string   `json:"mirror_schema"`
	CurrentActiveDB    string   `json:"current_active_db,omitempty"` // primary | mirror
	Exists             bool     `json:"exists"`
	Attached           *bool    `json:"attached"`
	Tables             []string `json:"tables"`
	MirrorTablesCount  int      `json:"mirror_tables_count"`
	MirrorTriggerCount int      `json:"mirror_triggers_count"`
	Error              string   `json:"error,omitempty"`
}

// MirrorPreview muestra de filas de una tabla del espejo.
type MirrorPreview struct {
	Table   string           `json:"table"`
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
	Total   int              `json:"total,omitempty"`
}
