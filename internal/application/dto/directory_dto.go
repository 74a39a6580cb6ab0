package dto

// CreatePartnerRequest alta de un cliente o proveedor. Kind: CLIENT | SUPPLIER (también CLIENTE | PROVEEDOR; por defecto CLIENT).
type CreatePartnerRequest struct {
	Name    string `json:"name" validate:"required"`
	Kind    string `json:"kind"`
	TaxID   string `json:"tax_id" validate:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
}

// UpdatePartnerRequest edición de un socio; nil conserva el valor.
type UpdatePartnerRequest struct {
	Name    *string `json:"name"`
	Kind    *string `json:"kind"`
	TaxID   *string `json:"tax_id"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Status  *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// DirectoryFilter filtros comunes de los directorios.
type DirectoryFilter struct {
	Query  string `query:"q"` // nombre o RUC, sin distinguir tildes
	Kind   string `query:"kind"`
	Status string `query:"status"`
}

// CreateCarrierRequest alta de un transportista.
type CreateCarrierRequest struct {
	Name   string `json:"name" validate:"required"`
	TaxID  string `json:"tax_id" validate:"required"`
	Plate  string `json:"plate" validate:"required"`
	Driver string `json:"driver"`
	Phone  string `json:"phone"`
}

// UpdateCarrierRequest edición de un transportista; nil conserva el valor.
type UpdateCarrierRequest struct {
	Name   *string `json:"name"`
	TaxID  *string `json:"tax_id"`
	Plate  *string `json:"plate"`
	Driver *string `json:"driver"`
	Phone  *string `json:"phone"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CreateCategoryRequest alta de una categoría del catálogo.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest edición de una categoría. Renombrarla actualiza los productos que la usan.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}
