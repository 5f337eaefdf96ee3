package request

// ByIDRequest binds the :id path parameter for record endpoints. The uuid
// binding doubles as the well-formed-store-identifier check, so malformed
// ids are rejected before any repository call.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
