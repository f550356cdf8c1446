// Wire DTOs keep the hyphenated field convention of the hulunote protocol
// (`database-id`, `backend-ts`, `same-deep-order`); existing clients depend
// on these exact names.
package dto

type DatabaseInfo struct {
	Id          string `json:"hulunote-databases/id"`
	Name        string `json:"hulunote-databases/name"`
	Description string `json:"hulunote-databases/description,omitempty"`
	IsDelete    bool   `json:"hulunote-databases/is-delete"`
	IsPublic    bool   `json:"hulunote-databases/is-public"`
	IsDefault   bool   `json:"hulunote-databases/is-default"`
	AccountId   int64  `json:"hulunote-databases/account-id"`
	CreatedAt   string `json:"hulunote-databases/created-at"`
	UpdatedAt   string `json:"hulunote-databases/updated-at"`
}

type CreateDatabaseRequest struct {
	DatabaseName string `json:"database-name" validate:"required"`
	Description  string `json:"description"`
}

type CreateDatabaseResponse struct {
	Database *DatabaseInfo `json:"database"`
	Success  bool          `json:"success"`
}

// DatabaseRef is the common "which database" triple accepted by most
// requests: an explicit id wins, then a name, and `database` is a legacy
// alias for the name.
type DatabaseRef struct {
	DatabaseId   string `json:"database-id"`
	Database     string `json:"database"`
	DatabaseName string `json:"database-name"`
}

func (r DatabaseRef) Name() string {
	if r.DatabaseName != "" {
		return r.DatabaseName
	}
	return r.Database
}

type UpdateDatabaseRequest struct {
	DatabaseId string  `json:"database-id"`
	Id         string  `json:"id"`
	IsPublic   *bool   `json:"is-public"`
	IsDefault  *bool   `json:"is-default"`
	IsDelete   *bool   `json:"is-delete"`
	DbName     *string `json:"db-name"`
}

type DeleteDatabaseRequest struct {
	DatabaseId   string `json:"database-id"`
	DatabaseName string `json:"database-name"`
}

type GetDatabaseListResponse struct {
	DatabaseList []*DatabaseInfo        `json:"database-list"`
	Settings     map[string]interface{} `json:"settings"`
}
