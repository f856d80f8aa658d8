package notion

// User represents a Notion user.
type User struct {
	Person    *Person `json:"person,omitempty"`
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
}

// Person holds personal account details.
type Person struct {
	Email string `json:"email,omitempty"`
}

// PartialUser identifies a user without profile details, as embedded in
// created_by and last_edited_by fields.
type PartialUser struct {
	ID string `json:"id"`
}

// PartialPage identifies a page by id only.
type PartialPage struct {
	ID string `json:"id"`
}

// PartialDatabase identifies a database by id only.
type PartialDatabase struct {
	ID string `json:"id"`
}

// PartialBlock identifies a block by id only.
type PartialBlock struct {
	ID string `json:"id"`
}
