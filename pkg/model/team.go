package model

// Team is fetched on demand and created via POST.
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	MemberIDs []int  `json:"member_ids,omitempty"`
}

type TeamCreateRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	MemberIDs []int  `json:"member_ids" validate:"required,min=1,dive,min=1"`
}

// User is a search result from the user directory.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
