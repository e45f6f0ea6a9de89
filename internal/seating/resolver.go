package seating

import (
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
)

// Occupancy загрузка стола для бейджа вместимости
// Direct считает только строки seating_assignments, унаследованные дети сюда не входят
type Occupancy struct {
	Direct       int  `json:"direct"`
	Capacity     int  `json:"capacity"`
	OverCapacity bool `json:"over_capacity"`
}

// TableSeating стол вместе с фактической рассадкой
// len(Roster) и Occupancy.Direct - разные величины и не должны сливаться
type TableSeating struct {
	Table     model.Table   `json:"table"`
	Roster    []model.Guest `json:"roster"`
	Occupancy Occupancy     `json:"occupancy"`
}

// Plan полная рассадка
type Plan struct {
	Tables     []TableSeating `json:"tables"`
	Unassigned []model.Guest  `json:"unassigned"`
}

// Resolver вычисляет рассадку по снимку коллекций
// Индексы строятся один раз в New, снимок не изменяется
type Resolver struct {
	guests      []model.Guest
	tables      []model.Table
	assignments []model.SeatingAssignment

	guestByID   map[string]int
	tableByID   map[string]int
	directByTbl map[string][]string // tableID -> guestID в порядке строк
	rowsByTbl   map[string]int      // tableID -> число строк назначений
	assigned    map[string]bool     // guestID -> есть прямое назначение хоть где-то
}

// New строит резолвер по снимку
func New(snapshot *model.Snapshot) *Resolver {
	r := &Resolver{
		guestByID:   make(map[string]int),
		tableByID:   make(map[string]int),
		directByTbl: make(map[string][]string),
		rowsByTbl:   make(map[string]int),
		assigned:    make(map[string]bool),
	}
	if snapshot == nil {
		return r
	}

	r.guests = snapshot.Guests
	r.tables = snapshot.Tables
	r.assignments = snapshot.Assignments

	for i, g := range r.guests {
		if _, exists := r.guestByID[g.ID]; !exists {
			r.guestByID[g.ID] = i
		}
	}
	for i, t := range r.tables {
		if _, exists := r.tableByID[t.ID]; !exists {
			r.tableByID[t.ID] = i
		}
	}
	for _, a := range r.assignments {
		r.rowsByTbl[a.TableID]++
		r.directByTbl[a.TableID] = append(r.directByTbl[a.TableID], a.GuestID)
		r.assigned[a.GuestID] = true
	}

	return r
}

// Roster возвращает гостей, которые фактически сидят за столом:
// прямые назначения, дети с выбранным столом, дети за столом родителя.
// Гость попадает ровно из одного источника: прямое назначение где угодно
// перекрывает пожелания ребёнка
func (r *Resolver) Roster(tableID string) []model.Guest {
	seen := make(map[string]bool)
	var roster []model.Guest

	add := func(g model.Guest) {
		if seen[g.ID] {
			return
		}
		seen[g.ID] = true
		roster = append(roster, g)
	}

	// Прямые назначения
	for _, guestID := range r.directByTbl[tableID] {
		if idx, ok := r.guestByID[guestID]; ok {
			add(r.guests[idx])
		}
	}

	// Дети с явно выбранным столом
	for _, g := range r.guests {
		if r.assigned[g.ID] {
			continue
		}
		if g.HasCustomTable() && *g.CustomTableID == tableID {
			add(g)
		}
	}

	// Дети, которые садятся за стол родителя
	for _, g := range r.guests {
		if r.assigned[g.ID] {
			continue
		}
		if g.InheritsParentTable() && r.parentSeatedAt(g, tableID) {
			add(g)
		}
	}

	return roster
}

// parentSeatedAt проверяет что родитель существует и напрямую назначен за стол
func (r *Resolver) parentSeatedAt(child model.Guest, tableID string) bool {
	parentID := *child.ParentGuestID
	if _, ok := r.guestByID[parentID]; !ok {
		return false
	}
	for _, guestID := range r.directByTbl[tableID] {
		if guestID == parentID {
			return true
		}
	}
	return false
}

// Unassigned возвращает гостей без места
// Считается по всем столам сразу, иначе гость выглядел бы свободным за одним столом и занятым за другим
func (r *Resolver) Unassigned() []model.Guest {
	var unassigned []model.Guest
	for _, g := range r.guests {
		if r.isSeated(g) {
			continue
		}
		unassigned = append(unassigned, g)
	}
	return unassigned
}

func (r *Resolver) isSeated(g model.Guest) bool {
	if r.assigned[g.ID] {
		return true
	}
	// Существование стола не проверяем, висячую ссылку показывает UI
	if g.HasCustomTable() {
		return true
	}
	if g.InheritsParentTable() {
		parentID := *g.ParentGuestID
		if _, ok := r.guestByID[parentID]; ok && r.assigned[parentID] {
			return true
		}
	}
	return false
}

// Occupancy возвращает загрузку стола по строкам назначений
// Для неизвестного стола Capacity равна 0, а переполнение не выставляется
func (r *Resolver) Occupancy(tableID string) Occupancy {
	occ := Occupancy{Direct: r.rowsByTbl[tableID]}
	if idx, ok := r.tableByID[tableID]; ok {
		occ.Capacity = r.tables[idx].Capacity
		occ.OverCapacity = occ.Direct > occ.Capacity
	}
	return occ
}

// Table ищет стол в снимке
func (r *Resolver) Table(tableID string) (model.Table, bool) {
	idx, ok := r.tableByID[tableID]
	if !ok {
		return model.Table{}, false
	}
	return r.tables[idx], true
}

// Seating рассадка одного стола
func (r *Resolver) Seating(tableID string) (TableSeating, bool) {
	table, ok := r.Table(tableID)
	if !ok {
		return TableSeating{}, false
	}
	return r.seating(table), true
}

func (r *Resolver) seating(table model.Table) TableSeating {
	return TableSeating{
		Table:     table,
		Roster:    r.Roster(table.ID),
		Occupancy: r.Occupancy(table.ID),
	}
}

// Plan считает рассадку по всем столам
func (r *Resolver) Plan() Plan {
	return r.plan(func(model.Table) bool { return true })
}

// PlanForEvent рассадка только по столам события и общим столам
// Список гостей без места остаётся глобальным
func (r *Resolver) PlanForEvent(eventID string) Plan {
	return r.plan(func(t model.Table) bool { return t.AppliesToEvent(eventID) })
}

func (r *Resolver) plan(include func(model.Table) bool) Plan {
	plan := Plan{
		Tables:     make([]TableSeating, 0, len(r.tables)),
		Unassigned: r.Unassigned(),
	}
	for _, t := range r.tables {
		if !include(t) {
			continue
		}
		plan.Tables = append(plan.Tables, r.seating(t))
	}
	return plan
}
