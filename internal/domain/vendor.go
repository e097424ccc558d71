package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VendorApplication struct {
	Envelope

	BusinessName    string `json:"business_name"`
	ContactPerson   string `json:"contact_person"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	CompanyName     string `json:"company_name"`
	InstagramHandle string `json:"instagram_handle,omitempty"`

	SpecialRequirements string `json:"special_requirements,omitempty"`
	KitchenEquipment    string `json:"kitchen_equipment,omitempty"`
	Storage             string `json:"storage,omitempty"`

	BusinessLicenseURL                string `json:"business_license_url"`
	HygieneInspectionCertificationURL string `json:"hygiene_inspection_certification_url"`
	LiabilityInsuranceURL             string `json:"liability_insurance_url"`

	Dishes            []Dish             `json:"dishes"`
	PowerRequirements []PowerRequirement `json:"power_requirements"`
	Employees         []Employee         `json:"employees"`
	TruckInfo         *TruckInfo         `json:"truck_info"`

	Event *Event `json:"event,omitempty"`
}

type Dish struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type PowerRequirement struct {
	ID      uuid.UUID `json:"id"`
	Device  string    `json:"device"`
	Wattage int       `json:"wattage"`
}

type Employee struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	HealthCertificateURL string    `json:"health_certificate_url"`
	SocialInsuranceURL   string    `json:"social_insurance_url"`
}

type TruckInfo struct {
	ID                          uuid.UUID       `json:"id"`
	PhotoURL                    string          `json:"photo_url"`
	Length                      decimal.Decimal `json:"length"`
	Width                       decimal.Decimal `json:"width"`
	Height                      decimal.Decimal `json:"height"`
	ElectroMechanicalLicenseURL string          `json:"electro_mechanical_license_url"`
}
