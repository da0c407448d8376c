package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/config"
	"bitbucket.org/mmdatafocus/spaces_backend/utils"
	mysqlDriver "github.com/go-sql-driver/mysql"
)

type Customer struct {
	ID               int              `gorm:"primary_key" json:"id"`
	FirstName        string           `gorm:"size:255" json:"first_name"`
	LastName         string           `gorm:"size:255" json:"last_name"`
	Name             string           `gorm:"size:255" json:"name"`
	Email            *string          `gorm:"size:255;index" json:"email"`
	MobileNumber     *string          `gorm:"size:50;index" json:"mobile_number"`
	Address          string           `gorm:"type:text" json:"address"`
	CompanyName      string           `gorm:"size:255" json:"company_name"`
	GstNo            string           `gorm:"size:50" json:"gst_no"`
	RegistrationType RegistrationType `gorm:"size:20;not null;default:'individual'" json:"registration_type"`
	PaysGst          *bool            `gorm:"not null;default:false" json:"pays_gst"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCustomer struct {
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Name             string           `json:"name"`
	Email            *string          `json:"email"`
	MobileNumber     *string          `json:"mobile_number"`
	Address          string           `json:"address"`
	CompanyName      string           `json:"company_name"`
	GstNo            string           `json:"gst_no"`
	RegistrationType RegistrationType `json:"registration_type"`
	PaysGst          *bool            `json:"pays_gst"`
}

// DisplayName prefers "First Last" and falls back to the stored name.
func (c *Customer) DisplayName() string {
	if c == nil {
		return ""
	}
	first := strings.TrimSpace(c.FirstName)
	last := strings.TrimSpace(c.LastName)
	if first != "" && last != "" {
		return first + " " + last
	}
	return strings.TrimSpace(c.Name)
}

var ErrDuplicateContact = errors.New("a customer with this email or mobile number already exists")

func isDuplicateKeyErr(err error) bool {
	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}

func CreateCustomer(ctx context.Context, input NewCustomer) (*Customer, error) {
	if input.Email != nil {
		if email := strings.TrimSpace(*input.Email); email != "" && !utils.IsValidEmail(email) {
			return nil, errors.New("invalid email address")
		}
	}
	if input.MobileNumber != nil && strings.TrimSpace(*input.MobileNumber) != "" {
		if err := utils.ValidatePhoneNumber(*input.MobileNumber, utils.CountryCode); err != nil {
			return nil, errors.New("invalid mobile number")
		}
	}
	customer := Customer{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Name:             input.Name,
		Email:            input.Email,
		MobileNumber:     input.MobileNumber,
		Address:          input.Address,
		CompanyName:      input.CompanyName,
		GstNo:            input.GstNo,
		RegistrationType: input.RegistrationType,
		PaysGst:          input.PaysGst,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&customer).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrDuplicateContact
		}
		return nil, err
	}
	return &customer, nil
}

func GetCustomers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	db := config.GetDB()
	if err := db.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// GetExistingContactSets loads every stored email and mobile number as
// normalized lookup sets for import deduplication.
func GetExistingContactSets(ctx context.Context) (map[string]struct{}, map[string]struct{}, error) {
	customers, err := GetCustomers(ctx)
	if err != nil {
		return nil, nil, err
	}
	emails := make(map[string]struct{})
	phones := make(map[string]struct{})
	for i := range customers {
		if customers[i].Email != nil {
			if e := utils.NormalizeEmail(*customers[i].Email); e != "" {
				emails[e] = struct{}{}
			}
		}
		if customers[i].MobileNumber != nil {
			if p := utils.NormalizePhone(*customers[i].MobileNumber); p != "" {
				phones[p] = struct{}{}
			}
		}
	}
	return emails, phones, nil
}

// InsertCustomersInChunks writes records in fixed-size chunks. Chunking
// bounds request size only; a failing chunk aborts the rest with no
// rollback of chunks already committed. Returns the count inserted before
// the failure point.
func InsertCustomersInChunks(ctx context.Context, customers []*Customer, chunkSize int) (int, error) {
	if chunkSize <= 0 {
		chunkSize = 200
	}
	db := config.GetDB()
	inserted := 0
	for start := 0; start < len(customers); start += chunkSize {
		end := start + chunkSize
		if end > len(customers) {
			end = len(customers)
		}
		chunk := customers[start:end]
		if err := db.WithContext(ctx).Create(&chunk).Error; err != nil {
			return inserted, err
		}
		inserted += len(chunk)
	}
	return inserted, nil
}
