package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/shopspring/decimal"

	"github.com/chefskiss/festival-api/internal/domain"
)

type DishRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price" swaggertype:"number"`
}

func (r DishRequest) Validate() error {
	return validation.ValidateStruct(
		&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Price, positiveDecimal),
	)
}

type PowerRequirementRequest struct {
	Device  string `json:"device"`
	Wattage int    `json:"wattage"`
}

func (r PowerRequirementRequest) Validate() error {
	return validation.ValidateStruct(
		&r,
		validation.Field(&r.Device, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Wattage, validation.Required, validation.Min(1)),
	)
}

type EmployeeRequest struct {
	Name                 string `json:"name"`
	HealthCertificateURL string `json:"health_certificate_url"`
	SocialInsuranceURL   string `json:"social_insurance_url"`
}

func (r EmployeeRequest) Validate() error {
	return validation.ValidateStruct(
		&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.HealthCertificateURL, validation.Required, is.URL),
		validation.Field(&r.SocialInsuranceURL, validation.Required, is.URL),
	)
}

type TruckInfoRequest struct {
	PhotoURL                    string          `json:"photo_url"`
	Length                      decimal.Decimal `json:"length" swaggertype:"number"`
	Width                       decimal.Decimal `json:"width" swaggertype:"number"`
	Height                      decimal.Decimal `json:"height" swaggertype:"number"`
	ElectroMechanicalLicenseURL string          `json:"electro_mechanical_license_url"`
}

func (r TruckInfoRequest) Validate() error {
	return validation.ValidateStruct(
		&r,
		validation.Field(&r.PhotoURL, validation.Required, is.URL),
		validation.Field(&r.Length, positiveDecimal),
		validation.Field(&r.Width, positiveDecimal),
		validation.Field(&r.Height, positiveDecimal),
		validation.Field(&r.ElectroMechanicalLicenseURL, validation.Required, is.URL),
	)
}

type VendorApplicationRequest struct {
	BusinessName    string `json:"business_name"`
	ContactPerson   string `json:"contact_person"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	CompanyName     string `json:"company_name"`
	InstagramHandle string `json:"instagram_handle"`

	SpecialRequirements string `json:"special_requirements"`
	KitchenEquipment    string `json:"kitchen_equipment"`
	Storage             string `json:"storage"`

	BusinessLicenseURL                string `json:"business_license_url"`
	HygieneInspectionCertificationURL string `json:"hygiene_inspection_certification_url"`
	LiabilityInsuranceURL             string `json:"liability_insurance_url"`

	Dishes            []DishRequest             `json:"dishes"`
	PowerRequirements []PowerRequirementRequest `json:"power_requirements"`
	Employees         []EmployeeRequest         `json:"employees"`

	OwnTruck  bool              `json:"own_truck"`
	TruckInfo *TruckInfoRequest `json:"truck_info"`
}

func (r *VendorApplicationRequest) Validate() error {
	err := validation.ValidateStruct(
		r,
		validation.Field(&r.BusinessName, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.ContactPerson, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.PhoneNumber, validation.Required, phoneRule),
		validation.Field(&r.CompanyName, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.InstagramHandle, validation.Length(0, 60)),
		validation.Field(&r.SpecialRequirements, validation.Length(0, 2000)),
		validation.Field(&r.KitchenEquipment, validation.Length(0, 2000)),
		validation.Field(&r.Storage, validation.Length(0, 2000)),
		validation.Field(&r.BusinessLicenseURL, validation.Required, is.URL),
		validation.Field(&r.HygieneInspectionCertificationURL, validation.Required, is.URL),
		validation.Field(&r.LiabilityInsuranceURL, validation.Required, is.URL),
		validation.Field(&r.Dishes, validation.Required, validation.Length(1, 4)),
		validation.Field(&r.PowerRequirements),
		validation.Field(&r.Employees, validation.Required, validation.Length(1, 0)),
		validation.Field(&r.TruckInfo),
	)
	if err != nil {
		return err
	}

	if r.OwnTruck && r.TruckInfo == nil {
		return errTruckRequired
	}

	return nil
}

// ToDomain drops any truck details unless the vendor brings their own truck.
func (r *VendorApplicationRequest) ToDomain() domain.VendorApplication {
	app := domain.VendorApplication{
		BusinessName:                      r.BusinessName,
		ContactPerson:                     r.ContactPerson,
		Email:                             r.Email,
		PhoneNumber:                       r.PhoneNumber,
		CompanyName:                       r.CompanyName,
		InstagramHandle:                   r.InstagramHandle,
		SpecialRequirements:               r.SpecialRequirements,
		KitchenEquipment:                  r.KitchenEquipment,
		Storage:                           r.Storage,
		BusinessLicenseURL:                r.BusinessLicenseURL,
		HygieneInspectionCertificationURL: r.HygieneInspectionCertificationURL,
		LiabilityInsuranceURL:             r.LiabilityInsuranceURL,
		Dishes:                            make([]domain.Dish, len(r.Dishes)),
		PowerRequirements:                 make([]domain.PowerRequirement, len(r.PowerRequirements)),
		Employees:                         make([]domain.Employee, len(r.Employees)),
	}

	for i, d := range r.Dishes {
		app.Dishes[i] = domain.Dish{Name: d.Name, Price: d.Price}
	}
	for i, p := range r.PowerRequirements {
		app.PowerRequirements[i] = domain.PowerRequirement{Device: p.Device, Wattage: p.Wattage}
	}
	for i, e := range r.Employees {
		app.Employees[i] = domain.Employee{
			Name:                 e.Name,
			HealthCertificateURL: e.HealthCertificateURL,
			SocialInsuranceURL:   e.SocialInsuranceURL,
		}
	}
	if r.OwnTruck && r.TruckInfo != nil {
		app.TruckInfo = &domain.TruckInfo{
			PhotoURL:                    r.TruckInfo.PhotoURL,
			Length:                      r.TruckInfo.Length,
			Width:                       r.TruckInfo.Width,
			Height:                      r.TruckInfo.Height,
			ElectroMechanicalLicenseURL: r.TruckInfo.ElectroMechanicalLicenseURL,
		}
	}

	return app
}
