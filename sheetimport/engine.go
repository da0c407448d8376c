package sheetimport

import (
	"strings"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/utils"
)

// headerSynonyms maps normalized spreadsheet header keys onto logical
// customer fields. Compound headers like "Full Name - First Name" normalize
// to "full_name_first_name" and resolve to the same destination as a bare
// "first_name" column.
var headerSynonyms = map[string]string{
	"first_name":                "first_name",
	"firstname":                 "first_name",
	"full_name_first_name":      "first_name",
	"last_name":                 "last_name",
	"lastname":                  "last_name",
	"full_name_last_name":       "last_name",
	"name":                      "name",
	"full_name":                 "name",
	"customer_name":             "name",
	"email":                     "email",
	"email_address":             "email",
	"email_id":                  "email",
	"mobile_number":             "mobile_number",
	"mobile":                    "mobile_number",
	"mobile_no":                 "mobile_number",
	"phone":                     "mobile_number",
	"phone_number":              "mobile_number",
	"contact_number":            "mobile_number",
	"address":                   "address",
	"full_address":              "address",
	"company":                   "company_name",
	"company_name":              "company_name",
	"organisation":              "company_name",
	"gst_no":                    "gst_no",
	"gstin":                     "gst_no",
	"gst_number":                "gst_no",
	"registration_type":         "registration_type",
	"customer_type":             "registration_type",
	"type":                      "registration_type",
	"pays_gst":                  "pays_gst",
	"gst":                       "pays_gst",
	"gst_registered":            "pays_gst",
}

type ImportResult struct {
	Inserted  int `json:"inserted"`
	Skipped   int `json:"skipped"`
	TotalRows int `json:"totalRows"`
}

// mapColumns resolves each header cell to a logical field index.
func mapColumns(header []string) map[string]int {
	columns := make(map[string]int)
	for i, raw := range header {
		key := utils.NormalizeKey(raw)
		field, ok := headerSynonyms[key]
		if !ok {
			continue
		}
		if _, taken := columns[field]; !taken {
			columns[field] = i
		}
	}
	return columns
}

func cellAt(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseBoolish(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}

// mapRow shapes one spreadsheet row into a customer record. Registration
// type is derived from free text: anything containing "company" is a
// company; companies always pay GST, individuals only when the sheet says so.
func mapRow(row []string, columns map[string]int) *models.Customer {
	customer := &models.Customer{
		FirstName:   cellAt(row, columns, "first_name"),
		LastName:    cellAt(row, columns, "last_name"),
		Name:        cellAt(row, columns, "name"),
		Address:     cellAt(row, columns, "address"),
		CompanyName: cellAt(row, columns, "company_name"),
		GstNo:       cellAt(row, columns, "gst_no"),
	}
	if customer.Name == "" {
		customer.Name = strings.TrimSpace(customer.FirstName + " " + customer.LastName)
	}

	if email := cellAt(row, columns, "email"); email != "" {
		customer.Email = &email
	}
	if phone := cellAt(row, columns, "mobile_number"); phone != "" {
		customer.MobileNumber = &phone
	}

	registration := cellAt(row, columns, "registration_type")
	if strings.Contains(strings.ToLower(registration), "company") {
		customer.RegistrationType = models.RegistrationTypeCompany
	} else {
		customer.RegistrationType = models.RegistrationTypeIndividual
	}

	paysGst := customer.RegistrationType == models.RegistrationTypeCompany ||
		parseBoolish(cellAt(row, columns, "pays_gst"))
	customer.PaysGst = &paysGst

	return customer
}

// Dedupe maps data rows to customer records and drops every row whose
// normalized email or phone is already known. Newly accepted rows are added
// to the existing sets immediately, so duplicates later in the same batch
// are caught too. The caller's sets are mutated in place.
func Dedupe(header []string, rows [][]string, existingEmails, existingPhones map[string]struct{}) ([]*models.Customer, int) {
	columns := mapColumns(header)

	var toInsert []*models.Customer
	skipped := 0
	for _, row := range rows {
		customer := mapRow(row, columns)

		email := ""
		if customer.Email != nil {
			email = utils.NormalizeEmail(*customer.Email)
		}
		phone := ""
		if customer.MobileNumber != nil {
			phone = utils.NormalizePhone(*customer.MobileNumber)
		}

		duplicate := false
		if email != "" {
			if _, ok := existingEmails[email]; ok {
				duplicate = true
			}
		}
		if !duplicate && phone != "" {
			if _, ok := existingPhones[phone]; ok {
				duplicate = true
			}
		}
		if duplicate {
			skipped++
			continue
		}

		if email != "" {
			existingEmails[email] = struct{}{}
		}
		if phone != "" {
			existingPhones[phone] = struct{}{}
		}
		toInsert = append(toInsert, customer)
	}
	return toInsert, skipped
}
