package services

import (
	"context"
	"sort"
	"time"

	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/app/repositories"
	"github.com/adityavkr/hostelhub/internal/pkg/apperrors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return apperrors.ErrUsernameExists
		}
		if user.AadhaarID != nil && u.AadhaarID != nil && *u.AadhaarID == *user.AadhaarID {
			return apperrors.ErrAadhaarExists
		}
		if user.Phone != "" && u.Phone == user.Phone {
			return apperrors.ErrPhoneExists
		}
	}
	user.ID = m.nextID
	m.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) GetByRollNo(_ context.Context, rollNo string) (*models.User, error) {
	for _, u := range m.users {
		if u.Role == models.RoleStudent && u.RollNo != nil && *u.RollNo == rollNo {
			return u, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *mockUserRepo) GetFirstWarden(_ context.Context) (*models.User, error) {
	var warden *models.User
	for _, u := range m.users {
		if u.Role != models.RoleWarden {
			continue
		}
		if warden == nil || u.ID < warden.ID {
			warden = u
		}
	}
	if warden == nil {
		return nil, apperrors.ErrWardenNotFound
	}
	return warden, nil
}

func (m *mockUserRepo) ListStudents(_ context.Context) ([]*models.User, error) {
	var students []*models.User
	for _, u := range m.users {
		if u.Role == models.RoleStudent {
			students = append(students, u)
		}
	}
	sort.Slice(students, func(i, j int) bool {
		var a, b string
		if students[i].RollNo != nil {
			a = *students[i].RollNo
		}
		if students[j].RollNo != nil {
			b = *students[j].RollNo
		}
		return a < b
	})
	return students, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *models.User) error {
	stored, ok := m.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	for _, u := range m.users {
		if u.ID == user.ID {
			continue
		}
		if user.Phone != "" && u.Phone == user.Phone {
			return apperrors.ErrPhoneExists
		}
	}
	stored.FullName = user.FullName
	stored.Email = user.Email
	stored.Phone = user.Phone
	stored.DateOfBirth = user.DateOfBirth
	stored.Gender = user.Gender
	stored.AadhaarID = user.AadhaarID
	stored.Stream = user.Stream
	stored.Branch = user.Branch
	stored.AddressLine1 = user.AddressLine1
	stored.AddressLine2 = user.AddressLine2
	stored.City = user.City
	stored.State = user.State
	stored.PostalCode = user.PostalCode
	stored.GuardianName = user.GuardianName
	stored.GuardianPhone = user.GuardianPhone
	stored.GuardianAddress = user.GuardianAddress
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id int64, hashedPassword string) error {
	u, ok := m.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = hashedPassword
	u.FirstLogin = false
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

// ── Mock BedRepository ──

type mockBedRepo struct {
	beds   map[int64]*models.Bed
	nextID int64
}

func newMockBedRepo() *mockBedRepo {
	return &mockBedRepo{beds: make(map[int64]*models.Bed), nextID: 1}
}

func (m *mockBedRepo) CreateForRoom(_ context.Context, roomID int64, capacity int) error {
	for n := 1; n <= capacity; n++ {
		bed := &models.Bed{
			ID:        m.nextID,
			RoomID:    roomID,
			BedNumber: n,
			Status:    models.BedAvailable,
		}
		m.nextID++
		m.beds[bed.ID] = bed
	}
	return nil
}

func (m *mockBedRepo) GetByID(_ context.Context, id int64) (*models.Bed, error) {
	if b, ok := m.beds[id]; ok {
		return b, nil
	}
	return nil, apperrors.ErrBedNotFound
}

func (m *mockBedRepo) GetByRoomAndNumber(_ context.Context, roomID int64, bedNumber int) (*models.Bed, error) {
	for _, b := range m.beds {
		if b.RoomID == roomID && b.BedNumber == bedNumber {
			return b, nil
		}
	}
	return nil, apperrors.ErrBedNotFound
}

func (m *mockBedRepo) GetByStudentID(_ context.Context, studentID int64) (*models.Bed, error) {
	for _, b := range m.beds {
		if b.StudentID != nil && *b.StudentID == studentID {
			return b, nil
		}
	}
	return nil, apperrors.ErrNoRoomAssigned
}

func (m *mockBedRepo) ListByRoom(_ context.Context, roomID int64) ([]*models.Bed, error) {
	var beds []*models.Bed
	for _, b := range m.beds {
		if b.RoomID == roomID {
			beds = append(beds, b)
		}
	}
	sort.Slice(beds, func(i, j int) bool { return beds[i].BedNumber < beds[j].BedNumber })
	return beds, nil
}

func (m *mockBedRepo) Claim(_ context.Context, bedID, studentID int64) error {
	bed, ok := m.beds[bedID]
	if !ok {
		return apperrors.ErrBedNotFound
	}
	if bed.StudentID != nil {
		return apperrors.ErrBedNoLongerAvailable
	}
	for _, b := range m.beds {
		if b.StudentID != nil && *b.StudentID == studentID {
			return apperrors.ErrAlreadyAssigned
		}
	}
	sid := studentID
	bed.StudentID = &sid
	bed.Status = models.BedOccupied
	return nil
}

func (m *mockBedRepo) Release(_ context.Context, bedID int64) error {
	bed, ok := m.beds[bedID]
	if !ok {
		return apperrors.ErrBedNotFound
	}
	bed.StudentID = nil
	bed.Status = models.BedAvailable
	return nil
}

func (m *mockBedRepo) ReleaseByStudent(_ context.Context, studentID int64) error {
	for _, b := range m.beds {
		if b.StudentID != nil && *b.StudentID == studentID {
			b.StudentID = nil
			b.Status = models.BedAvailable
		}
	}
	return nil
}

func (m *mockBedRepo) occupiedInRoom(roomID int64) int {
	count := 0
	for _, b := range m.beds {
		if b.RoomID == roomID && b.Status == models.BedOccupied {
			count++
		}
	}
	return count
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	rooms  map[int64]*models.Room
	beds   *mockBedRepo
	nextID int64
}

func newMockRoomRepo(beds *mockBedRepo) *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[int64]*models.Room), beds: beds, nextID: 1}
}

func (m *mockRoomRepo) Create(_ context.Context, room *models.Room) error {
	for _, r := range m.rooms {
		if r.RoomNumber == room.RoomNumber {
			return apperrors.ErrDuplicateRoomNumber
		}
	}
	room.ID = m.nextID
	m.nextID++
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now()
	}
	m.rooms[room.ID] = room
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id int64) (*models.Room, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, apperrors.ErrRoomNotFound
}

func (m *mockRoomRepo) ListWithOccupancy(_ context.Context) ([]*models.Room, error) {
	var rooms []*models.Room
	for _, r := range m.rooms {
		copied := *r
		copied.OccupiedBeds = m.beds.occupiedInRoom(r.ID)
		rooms = append(rooms, &copied)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomNumber < rooms[j].RoomNumber })
	return rooms, nil
}

func (m *mockRoomRepo) RecountOccupancy(_ context.Context, roomID int64) error {
	room, ok := m.rooms[roomID]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	room.OccupiedBeds = m.beds.occupiedInRoom(roomID)
	return nil
}

// ── Mock RoomChangeRequestRepository ──

type mockRoomChangeRepo struct {
	requests map[int64]*models.RoomChangeRequest
	nextID   int64
}

func newMockRoomChangeRepo() *mockRoomChangeRepo {
	return &mockRoomChangeRepo{requests: make(map[int64]*models.RoomChangeRequest), nextID: 1}
}

func (m *mockRoomChangeRepo) Create(_ context.Context, req *models.RoomChangeRequest) error {
	req.ID = m.nextID
	m.nextID++
	req.Status = models.RequestPending
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now()
	}
	m.requests[req.ID] = req
	return nil
}

func (m *mockRoomChangeRepo) GetByID(_ context.Context, id int64) (*models.RoomChangeRequest, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, apperrors.ErrRequestNotFound
}

func (m *mockRoomChangeRepo) List(_ context.Context, status models.RequestStatus) ([]*models.RoomChangeRequest, error) {
	var result []*models.RoomChangeRequest
	for _, r := range m.requests {
		if status != "" && r.Status != status {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RequestedAt.After(result[j].RequestedAt) })
	return result, nil
}

func (m *mockRoomChangeRepo) ListByStudent(_ context.Context, studentID int64) ([]*models.RoomChangeRequest, error) {
	var result []*models.RoomChangeRequest
	for _, r := range m.requests {
		if r.StudentID == studentID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRoomChangeRepo) MarkProcessed(_ context.Context, id int64, status models.RequestStatus, processedBy string, processedAt time.Time) error {
	req, ok := m.requests[id]
	if !ok {
		return apperrors.ErrRequestNotFound
	}
	if req.Status != models.RequestPending {
		return apperrors.ErrRequestAlreadyProcessed
	}
	req.Status = status
	req.ProcessedBy = &processedBy
	req.ProcessedAt = &processedAt
	return nil
}

func (m *mockRoomChangeRepo) DeleteByStudent(_ context.Context, studentID int64) error {
	for id, r := range m.requests {
		if r.StudentID == studentID {
			delete(m.requests, id)
		}
	}
	return nil
}

// ── Mock PersonalDetailsRequestRepository ──

type mockPersonalDetailsRepo struct {
	requests map[int64]*models.PersonalDetailsUpdateRequest
	nextID   int64
}

func newMockPersonalDetailsRepo() *mockPersonalDetailsRepo {
	return &mockPersonalDetailsRepo{requests: make(map[int64]*models.PersonalDetailsUpdateRequest), nextID: 1}
}

func (m *mockPersonalDetailsRepo) Create(_ context.Context, req *models.PersonalDetailsUpdateRequest) error {
	for _, r := range m.requests {
		if r.StudentID == req.StudentID && r.Status == models.RequestPending {
			return apperrors.ErrDuplicatePendingRequest
		}
	}
	req.ID = m.nextID
	m.nextID++
	req.Status = models.RequestPending
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	m.requests[req.ID] = req
	return nil
}

func (m *mockPersonalDetailsRepo) GetByID(_ context.Context, id int64) (*models.PersonalDetailsUpdateRequest, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, apperrors.ErrRequestNotFound
}

func (m *mockPersonalDetailsRepo) List(_ context.Context, status models.RequestStatus) ([]*models.PersonalDetailsUpdateRequest, error) {
	var result []*models.PersonalDetailsUpdateRequest
	for _, r := range m.requests {
		if status != "" && r.Status != status {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockPersonalDetailsRepo) ListByStudent(_ context.Context, studentID int64) ([]*models.PersonalDetailsUpdateRequest, error) {
	var result []*models.PersonalDetailsUpdateRequest
	for _, r := range m.requests {
		if r.StudentID == studentID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockPersonalDetailsRepo) HasPendingForStudent(_ context.Context, studentID int64) (bool, error) {
	for _, r := range m.requests {
		if r.StudentID == studentID && r.Status == models.RequestPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPersonalDetailsRepo) MarkProcessed(_ context.Context, id int64, status models.RequestStatus, comments, processedBy string, processedAt time.Time) error {
	req, ok := m.requests[id]
	if !ok {
		return apperrors.ErrRequestNotFound
	}
	if req.Status != models.RequestPending {
		return apperrors.ErrRequestAlreadyProcessed
	}
	req.Status = status
	req.WardenComments = comments
	req.ProcessedBy = &processedBy
	req.ProcessedAt = &processedAt
	return nil
}

func (m *mockPersonalDetailsRepo) DeleteByStudent(_ context.Context, studentID int64) error {
	for id, r := range m.requests {
		if r.StudentID == studentID {
			delete(m.requests, id)
		}
	}
	return nil
}

// ── Mock FoodMenuRepository ──

var mockMenuDayOrder = map[string]int{
	"Monday": 0, "Tuesday": 1, "Wednesday": 2, "Thursday": 3,
	"Friday": 4, "Saturday": 5, "Sunday": 6,
}

var mockMenuMealOrder = map[models.MealType]int{
	models.MealBreakfast: 0, models.MealLunch: 1, models.MealDinner: 2,
}

type mockFoodMenuRepo struct {
	entries map[int64]*models.FoodMenu
	nextID  int64
}

func newMockFoodMenuRepo() *mockFoodMenuRepo {
	return &mockFoodMenuRepo{entries: make(map[int64]*models.FoodMenu), nextID: 1}
}

func (m *mockFoodMenuRepo) Create(_ context.Context, entry *models.FoodMenu) error {
	for _, e := range m.entries {
		if e.DayOfWeek == entry.DayOfWeek && e.MealType == entry.MealType {
			return apperrors.ErrDuplicateMenuEntry
		}
	}
	entry.ID = m.nextID
	m.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockFoodMenuRepo) GetByID(_ context.Context, id int64) (*models.FoodMenu, error) {
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, apperrors.ErrMenuItemNotFound
}

func (m *mockFoodMenuRepo) ListAll(_ context.Context) ([]*models.FoodMenu, error) {
	var result []*models.FoodMenu
	for _, e := range m.entries {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		if mockMenuDayOrder[result[i].DayOfWeek] != mockMenuDayOrder[result[j].DayOfWeek] {
			return mockMenuDayOrder[result[i].DayOfWeek] < mockMenuDayOrder[result[j].DayOfWeek]
		}
		return mockMenuMealOrder[result[i].MealType] < mockMenuMealOrder[result[j].MealType]
	})
	return result, nil
}

func (m *mockFoodMenuRepo) Update(_ context.Context, entry *models.FoodMenu) error {
	if _, ok := m.entries[entry.ID]; !ok {
		return apperrors.ErrMenuItemNotFound
	}
	for _, e := range m.entries {
		if e.ID != entry.ID && e.DayOfWeek == entry.DayOfWeek && e.MealType == entry.MealType {
			return apperrors.ErrDuplicateMenuEntry
		}
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockFoodMenuRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.entries[id]; !ok {
		return apperrors.ErrMenuItemNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *mockFoodMenuRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.entries)), nil
}

// ── Mock TxRunner ──

// mockTxRunner hands the same mock-backed repositories to the callback;
// there is no real transaction, so effects apply immediately.
type mockTxRunner struct {
	repos *repositories.Repositories
}

func (m *mockTxRunner) InTx(ctx context.Context, fn func(ctx context.Context, repos *repositories.Repositories) error) error {
	return fn(ctx, m.repos)
}

// ── Test fixture ──

type testEnv struct {
	users       *mockUserRepo
	rooms       *mockRoomRepo
	beds        *mockBedRepo
	roomChanges *mockRoomChangeRepo
	personal    *mockPersonalDetailsRepo
	menus       *mockFoodMenuRepo
	repos       *repositories.Repositories
	tx          repositories.TxRunner
}

func newTestEnv() *testEnv {
	users := newMockUserRepo()
	beds := newMockBedRepo()
	rooms := newMockRoomRepo(beds)
	roomChanges := newMockRoomChangeRepo()
	personal := newMockPersonalDetailsRepo()
	menus := newMockFoodMenuRepo()

	repos := &repositories.Repositories{
		Users:           users,
		Rooms:           rooms,
		Beds:            beds,
		RoomChanges:     roomChanges,
		PersonalDetails: personal,
		FoodMenus:       menus,
	}

	return &testEnv{
		users:       users,
		rooms:       rooms,
		beds:        beds,
		roomChanges: roomChanges,
		personal:    personal,
		menus:       menus,
		repos:       repos,
		tx:          &mockTxRunner{repos: repos},
	}
}

// addRoom creates a room with its beds and returns it.
func (e *testEnv) addRoom(roomNumber string, capacity int) *models.Room {
	room := &models.Room{RoomNumber: roomNumber, Floor: 1, Capacity: capacity, RoomType: "triple"}
	_ = e.rooms.Create(context.Background(), room)
	_ = e.beds.CreateForRoom(context.Background(), room.ID, capacity)
	return room
}

// addStudent creates a student account with the roll number doubling as
// the username.
func (e *testEnv) addStudent(rollNo, fullName, phone string) *models.User {
	roll := rollNo
	user := &models.User{
		Username: rollNo,
		Password: "hashed",
		Role:     models.RoleStudent,
		FullName: fullName,
		Phone:    phone,
		RollNo:   &roll,
	}
	_ = e.users.Create(context.Background(), user)
	return user
}
