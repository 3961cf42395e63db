package request

type CreateZoneRequest struct {
	Name string `json:"name"`
}

type RenameZoneRequest struct {
	Name string `json:"name"`
}
