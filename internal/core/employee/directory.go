package employee

import "sort"

// Directory は 1 回の分析で参照する社員レコードのスナップショットです。
// 構築後は読み取り専用で、複数のゴルーチンから同時に参照できます。
type Directory struct {
	byID         map[int64]Employee
	order        []int64
	subordinates map[int64][]int64
}

// NewDirectory は社員レコードから Directory を構築します。
// 同じ ID が複数回現れた場合は後のレコードが優先されます。
func NewDirectory(employees []*Employee) *Directory {
	d := &Directory{
		byID:         make(map[int64]Employee, len(employees)),
		subordinates: make(map[int64][]int64),
	}

	for _, e := range employees {
		if e == nil {
			continue
		}
		d.byID[e.ID] = cloneEmployee(e)
	}

	d.order = make([]int64, 0, len(d.byID))
	for id := range d.byID {
		d.order = append(d.order, id)
	}
	sort.Slice(d.order, func(i, j int) bool { return d.order[i] < d.order[j] })

	for _, id := range d.order {
		if managerID, ok := d.byID[id].Manager(); ok {
			d.subordinates[managerID] = append(d.subordinates[managerID], id)
		}
	}

	return d
}

// Len は社員数を返します。
func (d *Directory) Len() int {
	return len(d.order)
}

// Get は ID で社員を取得します。
func (d *Directory) Get(id int64) (Employee, bool) {
	e, ok := d.byID[id]
	return e, ok
}

// All は全社員を ID の昇順で返します。
func (d *Directory) All() []Employee {
	all := make([]Employee, 0, len(d.order))
	for _, id := range d.order {
		all = append(all, d.byID[id])
	}
	return all
}

// Subordinates は managerID を上長とする直属の部下を ID の昇順で返します。
func (d *Directory) Subordinates(managerID int64) []Employee {
	ids := d.subordinates[managerID]
	if len(ids) == 0 {
		return nil
	}
	subs := make([]Employee, 0, len(ids))
	for _, id := range ids {
		subs = append(subs, d.byID[id])
	}
	return subs
}
