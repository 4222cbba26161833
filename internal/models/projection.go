package models

// UserClothesResponse is the read projection of a user and the clothes linked to it
// swagger:model UserClothesResponse
type UserClothesResponse struct {
	ID       int64             `json:"id" example:"1"`
	FullName string            `json:"full_name" example:"Jane Doe"`
	Clothes  []ClothesResponse `json:"clothes"`
}

// NewUserClothesResponse renders u. Clothes is never nil so it always encodes as an array.
func NewUserClothesResponse(u UserClothesDB) UserClothesResponse {
	clothes := make([]ClothesResponse, 0, len(u.Clothes))
	for _, c := range u.Clothes {
		clothes = append(clothes, NewClothesResponse(c))
	}
	return UserClothesResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Clothes:  clothes,
	}
}
