package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/repository/dao"
)

type VendorDAO interface {
	Insert(ctx context.Context, event dao.Event, app dao.VendorApplication, msg *dao.OutboxMessage) (dao.VendorApplication, error)
	FindByID(ctx context.Context, id string) (dao.VendorApplication, error)
	FindAll(ctx context.Context, eventID *uuid.UUID) ([]dao.VendorApplication, error)
	UpdateStatus(ctx context.Context, id, status string, hook dao.VendorStatusHook) (dao.VendorApplication, error)
	CountByStatus(ctx context.Context, eventID uuid.UUID) ([]dao.StatusCount, error)
}

// VendorReview decides whether a status change may proceed and which
// notification, if any, it produces.
type VendorReview func(before, after domain.VendorApplication) (*domain.Notification, error)

type VendorRepository struct {
	dao VendorDAO
}

func NewVendorRepository(dao VendorDAO) *VendorRepository {
	return &VendorRepository{
		dao: dao,
	}
}

func (r *VendorRepository) Create(ctx context.Context, event domain.Event, app domain.VendorApplication, n *domain.Notification) (domain.VendorApplication, error) {
	created, err := r.dao.Insert(ctx, eventDomainToDao(event), vendorDomainToDao(app), notificationToOutbox(n))
	if err != nil {
		return domain.VendorApplication{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return vendorDaoToDomain(created), nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id string) (domain.VendorApplication, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.VendorApplication{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return vendorDaoToDomain(found), nil
}

func (r *VendorRepository) FindAll(ctx context.Context, eventID *uuid.UUID) ([]domain.VendorApplication, error) {
	found, err := r.dao.FindAll(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	apps := make([]domain.VendorApplication, len(found))
	for i, a := range found {
		apps[i] = vendorDaoToDomain(a)
	}

	return apps, nil
}

func (r *VendorRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, review VendorReview) (domain.VendorApplication, error) {
	hook := func(before, after dao.VendorApplication) (*dao.OutboxMessage, error) {
		n, err := review(vendorDaoToDomain(before), vendorDaoToDomain(after))
		if err != nil {
			return nil, err
		}
		return notificationToOutbox(n), nil
	}

	updated, err := r.dao.UpdateStatus(ctx, id, string(status), hook)
	if err != nil {
		return domain.VendorApplication{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return vendorDaoToDomain(updated), nil
}

func (r *VendorRepository) CountByStatus(ctx context.Context, eventID uuid.UUID) (domain.StatusCounts, error) {
	rows, err := r.dao.CountByStatus(ctx, eventID)
	if err != nil {
		return domain.StatusCounts{}, fmt.Errorf("r.dao.CountByStatus -> %w", err)
	}

	return statusCountsDaoToDomain(rows), nil
}

func statusCountsDaoToDomain(rows []dao.StatusCount) domain.StatusCounts {
	var counts domain.StatusCounts
	for _, row := range rows {
		counts.Add(domain.Status(row.Status), row.Count)
	}
	return counts
}

func vendorDaoToDomain(a dao.VendorApplication) domain.VendorApplication {
	app := domain.VendorApplication{
		Envelope: domain.Envelope{
			ID:        a.ID,
			Kind:      domain.KindVendor,
			Status:    domain.Status(a.Status),
			EventID:   a.EventID,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		},
		BusinessName:                      a.BusinessName,
		ContactPerson:                     a.ContactPerson,
		Email:                             a.Email,
		PhoneNumber:                       a.PhoneNumber,
		CompanyName:                       a.CompanyName,
		InstagramHandle:                   deref(a.InstagramHandle),
		SpecialRequirements:               deref(a.SpecialRequirements),
		KitchenEquipment:                  deref(a.KitchenEquipment),
		Storage:                           deref(a.Storage),
		BusinessLicenseURL:                a.BusinessLicenseURL,
		HygieneInspectionCertificationURL: a.HygieneInspectionCertificationURL,
		LiabilityInsuranceURL:             a.LiabilityInsuranceURL,
		Dishes:                            make([]domain.Dish, len(a.Dishes)),
		PowerRequirements:                 make([]domain.PowerRequirement, len(a.PowerRequirements)),
		Employees:                         make([]domain.Employee, len(a.Employees)),
		Event:                             eventPtrDaoToDomain(a.Event),
	}

	for i, d := range a.Dishes {
		app.Dishes[i] = domain.Dish{ID: d.ID, Name: d.Name, Price: d.Price}
	}
	for i, p := range a.PowerRequirements {
		app.PowerRequirements[i] = domain.PowerRequirement{ID: p.ID, Device: p.Device, Wattage: p.Wattage}
	}
	for i, e := range a.Employees {
		app.Employees[i] = domain.Employee{
			ID:                   e.ID,
			Name:                 e.Name,
			HealthCertificateURL: e.HealthCertificateURL,
			SocialInsuranceURL:   e.SocialInsuranceURL,
		}
	}
	if a.TruckInfo != nil {
		app.TruckInfo = &domain.TruckInfo{
			ID:                          a.TruckInfo.ID,
			PhotoURL:                    a.TruckInfo.PhotoURL,
			Length:                      a.TruckInfo.Length,
			Width:                       a.TruckInfo.Width,
			Height:                      a.TruckInfo.Height,
			ElectroMechanicalLicenseURL: a.TruckInfo.ElectroMechanicalLicenseURL,
		}
	}

	return app
}

func vendorDomainToDao(a domain.VendorApplication) dao.VendorApplication {
	app := dao.VendorApplication{
		ID:                                a.ID,
		Status:                            string(a.Status),
		EventID:                           a.EventID,
		BusinessName:                      a.BusinessName,
		ContactPerson:                     a.ContactPerson,
		Email:                             a.Email,
		PhoneNumber:                       a.PhoneNumber,
		CompanyName:                       a.CompanyName,
		InstagramHandle:                   nullable(a.InstagramHandle),
		SpecialRequirements:               nullable(a.SpecialRequirements),
		KitchenEquipment:                  nullable(a.KitchenEquipment),
		Storage:                           nullable(a.Storage),
		BusinessLicenseURL:                a.BusinessLicenseURL,
		HygieneInspectionCertificationURL: a.HygieneInspectionCertificationURL,
		LiabilityInsuranceURL:             a.LiabilityInsuranceURL,
		Dishes:                            make([]dao.VendorDish, len(a.Dishes)),
		PowerRequirements:                 make([]dao.VendorPowerRequirement, len(a.PowerRequirements)),
		Employees:                         make([]dao.VendorEmployee, len(a.Employees)),
	}

	for i, d := range a.Dishes {
		app.Dishes[i] = dao.VendorDish{Name: d.Name, Price: d.Price}
	}
	for i, p := range a.PowerRequirements {
		app.PowerRequirements[i] = dao.VendorPowerRequirement{Device: p.Device, Wattage: p.Wattage}
	}
	for i, e := range a.Employees {
		app.Employees[i] = dao.VendorEmployee{
			Name:                 e.Name,
			HealthCertificateURL: e.HealthCertificateURL,
			SocialInsuranceURL:   e.SocialInsuranceURL,
		}
	}
	if a.TruckInfo != nil {
		app.TruckInfo = &dao.VendorTruckInfo{
			PhotoURL:                    a.TruckInfo.PhotoURL,
			Length:                      a.TruckInfo.Length,
			Width:                       a.TruckInfo.Width,
			Height:                      a.TruckInfo.Height,
			ElectroMechanicalLicenseURL: a.TruckInfo.ElectroMechanicalLicenseURL,
		}
	}

	return app
}
