package services

import (
	"fmt"
	"time"

	"autobuy_backend/internal/models"
	"autobuy_backend/internal/repositories"

	"github.com/lib/pq"
)

// In-memory repository fakes. They mirror the gorm implementations
// closely enough for service-level behavior tests.

type fakeAccountRepo struct {
	accounts map[string]*models.Account // keyed by ID
	nextID   int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*models.Account{}}
}

func (r *fakeAccountRepo) FindByID(id string) (*models.Account, error) {
	if a, ok := r.accounts[id]; ok {
		copy := *a
		return &copy, nil
	}
	return nil, repositories.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByEmail(role models.Role, email string) (*models.Account, error) {
	for _, a := range r.accounts {
		if a.Role == role && a.Email == email {
			copy := *a
			return &copy, nil
		}
	}
	return nil, repositories.ErrAccountNotFound
}

func (r *fakeAccountRepo) ProbeByEmail(email string) (*models.Account, error) {
	for _, role := range models.ProbeOrder {
		if a, err := r.FindByEmail(role, email); err == nil {
			return a, nil
		}
	}
	return nil, repositories.ErrAccountNotFound
}

func (r *fakeAccountRepo) ExistsByEmail(role models.Role, email string) (bool, error) {
	_, err := r.FindByEmail(role, email)
	return err == nil, nil
}

func (r *fakeAccountRepo) ExistsByUsername(role models.Role, username string) (bool, error) {
	for _, a := range r.accounts {
		if a.Role == role && a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAccountRepo) Create(account *models.Account) error {
	if taken, _ := r.ExistsByEmail(account.Role, account.Email); taken {
		return repositories.ErrAccountExists
	}
	if account.ID == "" {
		r.nextID++
		account.ID = fmt.Sprintf("acc-%d", r.nextID)
	}
	copy := *account
	r.accounts[account.ID] = &copy
	return nil
}

func (r *fakeAccountRepo) UpdateFields(id string, fields map[string]interface{}) error {
	a, ok := r.accounts[id]
	if !ok {
		return repositories.ErrAccountNotFound
	}
	for k, v := range fields {
		switch k {
		case "first_name":
			a.FirstName = v.(string)
		case "last_name":
			a.LastName = v.(string)
		case "username":
			a.Username = v.(string)
		case "approved":
			a.Approved = v.(bool)
		case "active":
			a.Active = v.(bool)
		case "password_hash":
			a.PasswordHash = v.(string)
		case "last_changed_password":
			a.LastChangedPassword = v.(time.Time)
		}
	}
	return nil
}

func (r *fakeAccountRepo) SetApproved(id string, approved bool) error {
	return r.UpdateFields(id, map[string]interface{}{"approved": approved})
}

func (r *fakeAccountRepo) SetActive(role models.Role, id string, active bool) error {
	a, ok := r.accounts[id]
	if !ok || a.Role != role {
		return repositories.ErrAccountNotFound
	}
	a.Active = active
	return nil
}

func (r *fakeAccountRepo) UpdatePassword(id string, passwordHash string, changedAt time.Time) error {
	return r.UpdateFields(id, map[string]interface{}{
		"password_hash":         passwordHash,
		"last_changed_password": changedAt,
	})
}

func (r *fakeAccountRepo) FindByRole(role models.Role, limit, offset int) ([]models.Account, error) {
	var out []models.Account
	for _, a := range r.accounts {
		if a.Role == role {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) CountByRole(role models.Role) (int64, error) {
	accounts, _ := r.FindByRole(role, 0, 0)
	return int64(len(accounts)), nil
}

type fakeOTPRepo struct {
	records map[string]*models.OTPRecord // keyed by account ID
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{records: map[string]*models.OTPRecord{}}
}

func (r *fakeOTPRepo) Replace(record *models.OTPRecord) error {
	copy := *record
	r.records[record.AccountID] = &copy
	return nil
}

func (r *fakeOTPRepo) FindByAccount(accountID string) (*models.OTPRecord, error) {
	if rec, ok := r.records[accountID]; ok {
		copy := *rec
		return &copy, nil
	}
	return nil, repositories.ErrOTPNotFound
}

func (r *fakeOTPRepo) FindByEmail(role models.Role, email string) (*models.OTPRecord, error) {
	for _, rec := range r.records {
		if rec.Role == role && rec.Email == email {
			copy := *rec
			return &copy, nil
		}
	}
	return nil, repositories.ErrOTPNotFound
}

func (r *fakeOTPRepo) ProbeByEmail(email string) (*models.OTPRecord, error) {
	for _, role := range models.ProbeOrder {
		if rec, err := r.FindByEmail(role, email); err == nil {
			return rec, nil
		}
	}
	return nil, repositories.ErrOTPNotFound
}

func (r *fakeOTPRepo) DeleteByAccount(accountID string) error {
	delete(r.records, accountID)
	return nil
}

func (r *fakeOTPRepo) DeleteExpired(now time.Time) (int64, error) {
	var deleted int64
	for id, rec := range r.records {
		if rec.Expired(now) {
			delete(r.records, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeProfileRepo struct {
	buyers  map[string]*models.BuyerProfile
	brokers map[string]*models.BrokerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		buyers:  map[string]*models.BuyerProfile{},
		brokers: map[string]*models.BrokerProfile{},
	}
}

func (r *fakeProfileRepo) GetBuyerProfile(accountID string) (*models.BuyerProfile, error) {
	if p, ok := r.buyers[accountID]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) UpsertBuyerProfile(accountID string, fields map[string]interface{}) error {
	p, ok := r.buyers[accountID]
	if !ok {
		p = &models.BuyerProfile{AccountID: accountID}
		r.buyers[accountID] = p
	}
	for k, v := range fields {
		switch k {
		case "present_address":
			p.PresentAddress = v.(string)
		case "permanent_address":
			p.PermanentAddress = v.(string)
		case "city":
			p.City = v.(string)
		case "postal_code":
			p.PostalCode = v.(string)
		case "country":
			p.Country = v.(string)
		case "language":
			p.Language = v.(string)
		case "time_zone":
			p.TimeZone = v.(string)
		case "email_notification":
			p.EmailNotification = v.(bool)
		case "push_notification":
			p.PushNotification = v.(bool)
		}
	}
	return nil
}

func (r *fakeProfileRepo) GetBrokerProfile(accountID string) (*models.BrokerProfile, error) {
	if p, ok := r.brokers[accountID]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) UpsertBrokerProfile(accountID string, fields map[string]interface{}) error {
	p, ok := r.brokers[accountID]
	if !ok {
		p = &models.BrokerProfile{AccountID: accountID}
		r.brokers[accountID] = p
	}
	for k, v := range fields {
		switch k {
		case "phone":
			p.Phone = v.(string)
		case "location":
			p.Location = v.(string)
		case "about":
			p.About = v.(string)
		case "experience":
			p.Experience = v.(string)
		case "specialities":
			p.Specialities = v.(pq.StringArray)
		case "expertise":
			p.Expertise = v.(string)
		case "language":
			p.Language = v.(string)
		}
	}
	return nil
}

func (r *fakeProfileRepo) ListBrokerProfiles(limit, offset int) ([]models.BrokerProfile, error) {
	var out []models.BrokerProfile
	for _, p := range r.brokers {
		out = append(out, *p)
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*models.Product // keyed by sellerID + "/" + tag
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*models.Product{}}
}

func productKey(sellerID, tag string) string { return sellerID + "/" + tag }

func (r *fakeProductRepo) Create(product *models.Product) error {
	key := productKey(product.SellerID, product.Tag)
	if _, ok := r.products[key]; ok {
		return repositories.ErrProductExists
	}
	copy := *product
	r.products[key] = &copy
	return nil
}

func (r *fakeProductRepo) FindBySellerAndTag(sellerID string, tag string) (*models.Product, error) {
	if p, ok := r.products[productKey(sellerID, tag)]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, repositories.ErrProductNotFound
}

func (r *fakeProductRepo) FindBySeller(sellerID string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if p.SellerID == sellerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindByCategory(category string, limit, offset int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindAll(limit, offset int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) CountBySeller(sellerID string) (int64, error) {
	products, _ := r.FindBySeller(sellerID)
	return int64(len(products)), nil
}

func (r *fakeProductRepo) UpdateFields(sellerID string, tag string, fields map[string]interface{}) error {
	p, ok := r.products[productKey(sellerID, tag)]
	if !ok {
		return repositories.ErrProductNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "category":
			p.Category = v.(string)
		case "short_description":
			p.ShortDescription = v.(string)
		case "long_description":
			p.LongDescription = v.(string)
		case "selling_price":
			p.SellingPrice = v.(string)
		case "quantity":
			p.Quantity = v.(string)
		}
	}
	return nil
}

func (r *fakeProductRepo) Delete(sellerID string, tag string) error {
	key := productKey(sellerID, tag)
	if _, ok := r.products[key]; !ok {
		return repositories.ErrProductNotFound
	}
	delete(r.products, key)
	return nil
}

type fakeUploadRepo struct {
	uploads map[string]*models.Upload
}

func newFakeUploadRepo() *fakeUploadRepo {
	return &fakeUploadRepo{uploads: map[string]*models.Upload{}}
}

func (r *fakeUploadRepo) Create(upload *models.Upload) error {
	copy := *upload
	r.uploads[upload.ID] = &copy
	return nil
}

func (r *fakeUploadRepo) FindByID(id string) (*models.Upload, error) {
	if u, ok := r.uploads[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, repositories.ErrUploadNotFound
}

func (r *fakeUploadRepo) FindByOwner(ownerID string) ([]models.Upload, error) {
	var out []models.Upload
	for _, u := range r.uploads {
		if u.OwnerID == ownerID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUploadRepo) Delete(id string) error {
	delete(r.uploads, id)
	return nil
}

type sentMail struct {
	To      string
	Code    string
	Purpose string
}

type fakeMailer struct {
	sent    []sentMail
	failAll bool
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	if m.failAll {
		return fmt.Errorf("smtp down")
	}
	m.sent = append(m.sent, sentMail{To: to})
	return nil
}

func (m *fakeMailer) SendVerificationOTP(to, code string, ttlMinutes int) error {
	if m.failAll {
		return fmt.Errorf("smtp down")
	}
	m.sent = append(m.sent, sentMail{To: to, Code: code, Purpose: "verification"})
	return nil
}

func (m *fakeMailer) SendRecoveryOTP(to, code string, ttlMinutes int) error {
	if m.failAll {
		return fmt.Errorf("smtp down")
	}
	m.sent = append(m.sent, sentMail{To: to, Code: code, Purpose: "recovery"})
	return nil
}
