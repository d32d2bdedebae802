package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"dormbook/internal/model"
	"dormbook/internal/repository"
)

// ── Mock BuildingRepository ──

type mockBuildingRepo struct {
	buildings map[uint]*model.Building
	nextID    uint
}

func newMockBuildingRepo() *mockBuildingRepo {
	return &mockBuildingRepo{buildings: make(map[uint]*model.Building), nextID: 1}
}

func (m *mockBuildingRepo) Create(_ context.Context, b *model.Building) error {
	if b.BuildingID == 0 {
		b.BuildingID = m.nextID
		m.nextID++
	}
	m.buildings[b.BuildingID] = b
	return nil
}

func (m *mockBuildingRepo) GetByID(_ context.Context, id uint) (*model.Building, error) {
	if b, ok := m.buildings[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBuildingRepo) List(_ context.Context) ([]model.Building, error) {
	var result []model.Building
	for _, b := range m.buildings {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].BuildingID > result[j].BuildingID })
	return result, nil
}

func (m *mockBuildingRepo) Update(_ context.Context, b *model.Building) error {
	m.buildings[b.BuildingID] = b
	return nil
}

func (m *mockBuildingRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.buildings[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.buildings, id)
	return nil
}

// ── Mock FloorRepository ──

type mockFloorRepo struct {
	floors    map[uint]*model.Floor
	buildings *mockBuildingRepo
	nextID    uint
}

func newMockFloorRepo(buildings *mockBuildingRepo) *mockFloorRepo {
	return &mockFloorRepo{floors: make(map[uint]*model.Floor), buildings: buildings, nextID: 1}
}

func (m *mockFloorRepo) Create(_ context.Context, f *model.Floor) error {
	if f.FloorID == 0 {
		f.FloorID = m.nextID
		m.nextID++
	}
	m.floors[f.FloorID] = f
	return nil
}

func (m *mockFloorRepo) GetByID(_ context.Context, id uint) (*model.Floor, error) {
	if f, ok := m.floors[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFloorRepo) GetDetail(_ context.Context, id uint) (*model.FloorDetail, error) {
	f, ok := m.floors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m.toDetail(f), nil
}

func (m *mockFloorRepo) List(_ context.Context, buildingID *uint) ([]model.FloorDetail, error) {
	var result []model.FloorDetail
	for _, f := range m.floors {
		if buildingID != nil && f.BuildingID != *buildingID {
			continue
		}
		result = append(result, *m.toDetail(f))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FloorID > result[j].FloorID })
	return result, nil
}

func (m *mockFloorRepo) Update(_ context.Context, f *model.Floor) error {
	m.floors[f.FloorID] = f
	return nil
}

func (m *mockFloorRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.floors[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.floors, id)
	return nil
}

func (m *mockFloorRepo) toDetail(f *model.Floor) *model.FloorDetail {
	detail := &model.FloorDetail{
		FloorID:     f.FloorID,
		BuildingID:  f.BuildingID,
		FloorNumber: f.FloorNumber,
		Description: f.Description,
	}
	if b, ok := m.buildings.buildings[f.BuildingID]; ok {
		detail.BuildingName = b.BuildingName
	}
	return detail
}

// ── Mock FlatRepository ──

type mockFlatRepo struct {
	flats  map[uint]*model.Flat
	floors *mockFloorRepo
	nextID uint
}

func newMockFlatRepo(floors *mockFloorRepo) *mockFlatRepo {
	return &mockFlatRepo{flats: make(map[uint]*model.Flat), floors: floors, nextID: 1}
}

func (m *mockFlatRepo) Create(_ context.Context, fl *model.Flat) error {
	if fl.FlatID == 0 {
		fl.FlatID = m.nextID
		m.nextID++
	}
	m.flats[fl.FlatID] = fl
	return nil
}

func (m *mockFlatRepo) GetByID(_ context.Context, id uint) (*model.Flat, error) {
	if fl, ok := m.flats[id]; ok {
		return fl, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFlatRepo) List(_ context.Context, floorID *uint) ([]model.FlatDetail, error) {
	var result []model.FlatDetail
	for _, fl := range m.flats {
		if floorID != nil && fl.FloorID != *floorID {
			continue
		}
		detail := model.FlatDetail{
			FlatID:     fl.FlatID,
			FloorID:    fl.FloorID,
			FlatNumber: fl.FlatNumber,
			FlatType:   fl.FlatType,
			Status:     fl.Status,
		}
		if f, ok := m.floors.floors[fl.FloorID]; ok {
			detail.FloorNumber = f.FloorNumber
			detail.BuildingID = f.BuildingID
			if b, ok := m.floors.buildings.buildings[f.BuildingID]; ok {
				detail.BuildingName = b.BuildingName
			}
		}
		result = append(result, detail)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FlatID > result[j].FlatID })
	return result, nil
}

func (m *mockFlatRepo) Update(_ context.Context, fl *model.Flat) error {
	m.flats[fl.FlatID] = fl
	return nil
}

func (m *mockFlatRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.flats[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.flats, id)
	return nil
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	rooms  map[uint]*model.Room
	flats  *mockFlatRepo
	nextID uint
}

func newMockRoomRepo(flats *mockFlatRepo) *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[uint]*model.Room), flats: flats, nextID: 1}
}

func (m *mockRoomRepo) Create(_ context.Context, rm *model.Room) error {
	if rm.RoomID == 0 {
		rm.RoomID = m.nextID
		m.nextID++
	}
	m.rooms[rm.RoomID] = rm
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id uint) (*model.Room, error) {
	if rm, ok := m.rooms[id]; ok {
		return rm, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) List(_ context.Context, flatID *uint) ([]model.RoomDetail, error) {
	var result []model.RoomDetail
	for _, rm := range m.rooms {
		if flatID != nil && rm.FlatID != *flatID {
			continue
		}
		detail := model.RoomDetail{
			RoomID:            rm.RoomID,
			FlatID:            rm.FlatID,
			RoomNumber:        rm.RoomNumber,
			RoomType:          rm.RoomType,
			MaxOccupancy:      rm.MaxOccupancy,
			GenderRestriction: rm.GenderRestriction,
			Status:            rm.Status,
		}
		if fl, ok := m.flats.flats[rm.FlatID]; ok {
			detail.FlatNumber = &fl.FlatNumber
			if f, ok := m.flats.floors.floors[fl.FloorID]; ok {
				fn := f.FloorNumber
				detail.FloorNumber = &fn
				bid := f.BuildingID
				detail.BuildingID = &bid
				if b, ok := m.flats.floors.buildings.buildings[f.BuildingID]; ok {
					detail.BuildingName = &b.BuildingName
				}
			}
		}
		result = append(result, detail)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RoomID > result[j].RoomID })
	return result, nil
}

func (m *mockRoomRepo) Update(_ context.Context, rm *model.Room) error {
	m.rooms[rm.RoomID] = rm
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.rooms[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rooms, id)
	return nil
}

// ── Mock BedRepository ──

type mockBedRepo struct {
	beds   map[uint]*model.Bed
	rooms  *mockRoomRepo
	nextID uint
}

func newMockBedRepo(rooms *mockRoomRepo) *mockBedRepo {
	return &mockBedRepo{beds: make(map[uint]*model.Bed), nextID: 1, rooms: rooms}
}

func (m *mockBedRepo) Create(_ context.Context, bd *model.Bed) error {
	for _, existing := range m.beds {
		if existing.RoomID == bd.RoomID && existing.BedCode == bd.BedCode {
			return gorm.ErrDuplicatedKey
		}
	}
	if bd.BedID == 0 {
		bd.BedID = m.nextID
		m.nextID++
	}
	m.beds[bd.BedID] = bd
	return nil
}

func (m *mockBedRepo) GetByID(_ context.Context, id uint) (*model.Bed, error) {
	if bd, ok := m.beds[id]; ok {
		return bd, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBedRepo) List(_ context.Context, roomID *uint) ([]model.BedDetail, error) {
	var result []model.BedDetail
	for _, bd := range m.beds {
		if roomID != nil && bd.RoomID != *roomID {
			continue
		}
		detail := model.BedDetail{
			BedID:   bd.BedID,
			RoomID:  bd.RoomID,
			BedCode: bd.BedCode,
			Status:  bd.Status,
		}
		if rm, ok := m.rooms.rooms[bd.RoomID]; ok {
			detail.RoomNumber = &rm.RoomNumber
			if fl, ok := m.rooms.flats.flats[rm.FlatID]; ok {
				detail.FlatNumber = &fl.FlatNumber
				if f, ok := m.rooms.flats.floors.floors[fl.FloorID]; ok {
					fn := f.FloorNumber
					detail.FloorNumber = &fn
					bid := f.BuildingID
					detail.BuildingID = &bid
					if b, ok := m.rooms.flats.floors.buildings.buildings[f.BuildingID]; ok {
						detail.BuildingName = &b.BuildingName
					}
				}
			}
		}
		result = append(result, detail)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].BedID > result[j].BedID })
	return result, nil
}

func (m *mockBedRepo) Update(_ context.Context, bd *model.Bed) error {
	for _, existing := range m.beds {
		if existing.BedID != bd.BedID && existing.RoomID == bd.RoomID && existing.BedCode == bd.BedCode {
			return gorm.ErrDuplicatedKey
		}
	}
	m.beds[bd.BedID] = bd
	return nil
}

func (m *mockBedRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.beds[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.beds, id)
	return nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[uint]*model.Employee
	nextID    uint
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[uint]*model.Employee), nextID: 1}
}

func (m *mockEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	for _, existing := range m.employees {
		if existing.EmployeeCode == e.EmployeeCode {
			return gorm.ErrDuplicatedKey
		}
	}
	if e.EmployeeID == 0 {
		e.EmployeeID = m.nextID
		m.nextID++
	}
	m.employees[e.EmployeeID] = e
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id uint) (*model.Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	var result []model.Employee
	for _, e := range m.employees {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmployeeID > result[j].EmployeeID })
	return result, nil
}

func (m *mockEmployeeRepo) ListCodes(_ context.Context) ([]string, error) {
	var codes []string
	for _, e := range m.employees {
		codes = append(codes, e.EmployeeCode)
	}
	return codes, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	for _, existing := range m.employees {
		if existing.EmployeeID != e.EmployeeID && existing.EmployeeCode == e.EmployeeCode {
			return gorm.ErrDuplicatedKey
		}
	}
	m.employees[e.EmployeeID] = e
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.employees[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.employees, id)
	return nil
}

// ── Mock AssignmentRepository ──
//
// 写路径复刻真实仓储的事务语义：创建无条件占用床位，
// 关闭/删除后按存活分配集合复核床位状态

type mockAssignmentRepo struct {
	assignments map[uint]*model.BedAssignment
	beds        *mockBedRepo
	employees   *mockEmployeeRepo
	nextID      uint
}

func newMockAssignmentRepo(beds *mockBedRepo, employees *mockEmployeeRepo) *mockAssignmentRepo {
	return &mockAssignmentRepo{
		assignments: make(map[uint]*model.BedAssignment),
		beds:        beds,
		employees:   employees,
		nextID:      1,
	}
}

func (m *mockAssignmentRepo) List(_ context.Context) ([]model.AssignmentDetail, error) {
	var result []model.AssignmentDetail
	for _, a := range m.assignments {
		if d := m.toDetail(a); d != nil {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AssignmentID > result[j].AssignmentID })
	return result, nil
}

func (m *mockAssignmentRepo) GetDetail(_ context.Context, id uint) (*model.AssignmentDetail, error) {
	a, ok := m.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	d := m.toDetail(a)
	if d == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (m *mockAssignmentRepo) Create(_ context.Context, a *model.BedAssignment) error {
	if a.AssignmentID == 0 {
		a.AssignmentID = m.nextID
		m.nextID++
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	m.assignments[a.AssignmentID] = a

	if bd, ok := m.beds.beds[a.BedID]; ok {
		bd.Status = model.BedStatusOccupied
	}
	return nil
}

func (m *mockAssignmentRepo) Update(_ context.Context, id uint, updates map[string]interface{}, closeRequested bool) error {
	a, ok := m.assignments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	for key, value := range updates {
		switch key {
		case "start_date":
			a.StartDate = value.(time.Time)
		case "end_date":
			if value == nil {
				a.EndDate = nil
			} else {
				t := value.(time.Time)
				a.EndDate = &t
			}
		case "status":
			a.Status = value.(string)
		case "reason":
			r := value.(string)
			a.Reason = &r
		}
	}

	if closeRequested {
		m.reconcileBedStatus(a.BedID)
	}
	return nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id uint) (uint, error) {
	a, ok := m.assignments[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	bedID := a.BedID
	delete(m.assignments, id)
	m.reconcileBedStatus(bedID)
	return bedID, nil
}

func (m *mockAssignmentRepo) reconcileBedStatus(bedID uint) {
	live := 0
	for _, a := range m.assignments {
		if a.BedID != bedID {
			continue
		}
		for _, s := range model.LiveStatuses() {
			if a.Status == s {
				live++
				break
			}
		}
	}
	if live == 0 {
		if bd, ok := m.beds.beds[bedID]; ok {
			bd.Status = model.BedStatusAvailable
		}
	}
}

func (m *mockAssignmentRepo) toDetail(a *model.BedAssignment) *model.AssignmentDetail {
	e, ok := m.employees.employees[a.EmployeeID]
	if !ok {
		return nil
	}
	bd, ok := m.beds.beds[a.BedID]
	if !ok {
		return nil
	}

	detail := &model.AssignmentDetail{
		AssignmentID: a.AssignmentID,
		EmployeeID:   a.EmployeeID,
		EmployeeCode: e.EmployeeCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		BedID:        a.BedID,
		BedCode:      bd.BedCode,
		StartDate:    a.StartDate,
		EndDate:      a.EndDate,
		Status:       a.Status,
		Reason:       a.Reason,
		CreatedAt:    a.CreatedAt,
		CreatedBy:    a.CreatedBy,
	}
	if rm, ok := m.beds.rooms.rooms[bd.RoomID]; ok {
		detail.RoomNumber = rm.RoomNumber
		if fl, ok := m.beds.rooms.flats.flats[rm.FlatID]; ok {
			detail.FlatNumber = fl.FlatNumber
			if f, ok := m.beds.rooms.flats.floors.floors[fl.FloorID]; ok {
				detail.FloorNumber = f.FloorNumber
				if b, ok := m.beds.rooms.flats.floors.buildings.buildings[f.BuildingID]; ok {
					detail.BuildingName = b.BuildingName
				}
			}
		}
	}
	return detail
}

// ── 测试夹具 ──

type mockRepos struct {
	building   *mockBuildingRepo
	floor      *mockFloorRepo
	flat       *mockFlatRepo
	room       *mockRoomRepo
	bed        *mockBedRepo
	employee   *mockEmployeeRepo
	assignment *mockAssignmentRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	building := newMockBuildingRepo()
	floor := newMockFloorRepo(building)
	flat := newMockFlatRepo(floor)
	room := newMockRoomRepo(flat)
	bed := newMockBedRepo(room)
	employee := newMockEmployeeRepo()
	assignment := newMockAssignmentRepo(bed, employee)

	repo := &repository.Repository{
		Building:   building,
		Floor:      floor,
		Flat:       flat,
		Room:       room,
		Bed:        bed,
		Employee:   employee,
		Assignment: assignment,
	}
	mocks := &mockRepos{
		building:   building,
		floor:      floor,
		flat:       flat,
		room:       room,
		bed:        bed,
		employee:   employee,
		assignment: assignment,
	}
	return repo, mocks
}

// seedHierarchy 铺一条完整层级链（楼栋→楼层→套间→房间→床位）并登记一名员工
func seedHierarchy(mocks *mockRepos) (bedID, employeeID uint) {
	mocks.building.buildings[1] = &model.Building{BuildingID: 1, BuildingName: "北苑1号楼", Status: "Active"}
	mocks.floor.floors[1] = &model.Floor{FloorID: 1, BuildingID: 1, FloorNumber: 3}
	mocks.flat.flats[1] = &model.Flat{FlatID: 1, FloorID: 1, FlatNumber: "301", Status: "Active"}
	mocks.room.rooms[1] = &model.Room{RoomID: 1, FlatID: 1, RoomNumber: "301-A", MaxOccupancy: 4, Status: "Active"}
	mocks.bed.beds[1] = &model.Bed{BedID: 1, RoomID: 1, BedCode: "A1", Status: model.BedStatusAvailable}
	mocks.employee.employees[1] = &model.Employee{
		EmployeeID: 1, EmployeeCode: "EMP001", FirstName: "伟", LastName: "张", Gender: "M", Status: "Active",
	}
	return 1, 1
}
