package employee

import "time"

// EmployeeDetailResponse is the full read projection returned by the
// single-entity endpoints. Salary is rendered as its exact two-decimal
// string, never a float.
type EmployeeDetailResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Salary     string    `json:"salary"`
	HireDate   time.Time `json:"hireDate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// EmployeePublicResponse is the detail projection without the internal
// id.
type EmployeePublicResponse struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Salary     string    `json:"salary"`
	HireDate   time.Time `json:"hireDate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// EmployeeListItemResponse is the minimal projection for listings; it
// carries no salary.
type EmployeeListItemResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

func ToDetailResponse(empl *Employee) *EmployeeDetailResponse {
	if empl == nil {
		return nil
	}
	return &EmployeeDetailResponse{
		ID:         empl.ID,
		Name:       empl.Name,
		Email:      empl.Email,
		Position:   empl.Position,
		Department: empl.Department,
		Salary:     empl.Salary.StringFixed(2),
		HireDate:   empl.HireDate,
		CreatedAt:  empl.CreatedAt,
		UpdatedAt:  empl.UpdatedAt,
	}
}

func ToPublicResponse(empl *Employee) *EmployeePublicResponse {
	if empl == nil {
		return nil
	}
	return &EmployeePublicResponse{
		Name:       empl.Name,
		Email:      empl.Email,
		Position:   empl.Position,
		Department: empl.Department,
		Salary:     empl.Salary.StringFixed(2),
		HireDate:   empl.HireDate,
		CreatedAt:  empl.CreatedAt,
		UpdatedAt:  empl.UpdatedAt,
	}
}

func ToListItemResponse(empl *Employee) *EmployeeListItemResponse {
	if empl == nil {
		return nil
	}
	return &EmployeeListItemResponse{
		ID:         empl.ID,
		Name:       empl.Name,
		Email:      empl.Email,
		Position:   empl.Position,
		Department: empl.Department,
	}
}

// The slice forms always return a non-nil slice so list endpoints emit
// [] instead of null.

func ToDetailResponses(list []Employee) []EmployeeDetailResponse {
	res := make([]EmployeeDetailResponse, 0, len(list))
	for i := range list {
		res = append(res, *ToDetailResponse(&list[i]))
	}
	return res
}

func ToPublicResponses(list []Employee) []EmployeePublicResponse {
	res := make([]EmployeePublicResponse, 0, len(list))
	for i := range list {
		res = append(res, *ToPublicResponse(&list[i]))
	}
	return res
}

func ToListItemResponses(list []Employee) []EmployeeListItemResponse {
	res := make([]EmployeeListItemResponse, 0, len(list))
	for i := range list {
		res = append(res, *ToListItemResponse(&list[i]))
	}
	return res
}
