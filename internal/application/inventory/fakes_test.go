package inventory_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

// memStore emula las tablas de inventario con bloqueo por fila de repuesto.
type memStore struct {
	mu         sync.Mutex
	parts      map[string]entity.MachinePart
	purchases  map[string]entity.PurchaseItem
	usages     map[string]entity.PartsUsageRecord
	breakdowns map[string]*entity.BreakdownLog
	locks      map[string]*sync.Mutex
	// lockDelay alarga la ventana entre bloquear una fila y seguir con la transacción.
	lockDelay time.Duration
}

func newMemStore() *memStore {
	return &memStore{
		parts:      make(map[string]entity.MachinePart),
		purchases:  make(map[string]entity.PurchaseItem),
		usages:     make(map[string]entity.PartsUsageRecord),
		breakdowns: make(map[string]*entity.BreakdownLog),
		locks:      make(map[string]*sync.Mutex),
	}
}

func (s *memStore) rowLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

func (s *memStore) quantity(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parts[id].Quantity
}

func (s *memStore) usageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.usages)
}

func (s *memStore) purchaseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.purchases)
}

func (s *memStore) addPart(id, companyID, name string, qty int, price string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parts[id] = entity.MachinePart{ID: id, CompanyID: companyID, Name: name, Quantity: qty, Price: decimal.RequireFromString(price)}
}

func (s *memStore) addBreakdown(id, companyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.breakdowns[id] = &entity.BreakdownLog{ID: id, CompanyID: companyID, BreakdownStart: time.Now()}
}

func (s *memStore) addBreakdownOnLine(id, companyID, lineID string, start time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.breakdowns[id] = &entity.BreakdownLog{ID: id, CompanyID: companyID, LineID: &lineID, BreakdownStart: start}
}

// memTx acumula escrituras y las aplica en commit. En modo direct cada escritura se confirma al instante.
type memTx struct {
	s        *memStore
	direct   bool
	held     map[string]*sync.Mutex
	qty      map[string]int
	newPurch []entity.PurchaseItem
	newUsage []entity.PartsUsageRecord
	delPurch []string
	delUsage []string
}

func newMemTx(s *memStore, direct bool) *memTx {
	return &memTx{s: s, direct: direct, held: make(map[string]*sync.Mutex), qty: make(map[string]int)}
}

func (t *memTx) commit() {
	t.s.mu.Lock()
	for id, q := range t.qty {
		p := t.s.parts[id]
		p.Quantity = q
		t.s.parts[id] = p
	}
	for _, p := range t.newPurch {
		t.s.purchases[p.ID] = p
	}
	for _, u := range t.newUsage {
		t.s.usages[u.ID] = u
	}
	for _, id := range t.delPurch {
		delete(t.s.purchases, id)
	}
	for _, id := range t.delUsage {
		delete(t.s.usages, id)
	}
	t.s.mu.Unlock()
	t.qty = make(map[string]int)
	t.newPurch, t.newUsage, t.delPurch, t.delUsage = nil, nil, nil, nil
}

func (t *memTx) release() {
	for id, l := range t.held {
		l.Unlock()
		delete(t.held, id)
	}
}

func (t *memTx) done() {
	if t.direct {
		t.commit()
	}
}

// fakeTxRunner implementa inventory.TxRunner sobre memStore.
type fakeTxRunner struct {
	s *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	partRepo repository.MachinePartRepository,
	purchaseRepo repository.PurchaseItemRepository,
	usageRepo repository.PartsUsageRecordRepository,
) error) error {
	tx := newMemTx(r.s, false)
	defer tx.release()
	if err := fn(&memParts{tx: tx}, &memPurchases{tx: tx}, &memUsages{tx: tx}); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// ── MachinePartRepository ────────────────────────────────────────────────────

type memParts struct{ tx *memTx }

func (r *memParts) Create(_ context.Context, p *entity.MachinePart) error {
	s := r.tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.parts {
		if existing.CompanyID == p.CompanyID && existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	s.parts[p.ID] = *p
	return nil
}

func (r *memParts) GetByID(_ context.Context, id string) (*entity.MachinePart, error) {
	s := r.tx.s
	s.mu.Lock()
	p, ok := s.parts[id]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	if q, staged := r.tx.qty[id]; staged {
		p.Quantity = q
	}
	return &p, nil
}

func (r *memParts) GetForUpdate(ctx context.Context, id string) (*entity.MachinePart, error) {
	if _, held := r.tx.held[id]; !held {
		l := r.tx.s.rowLock(id)
		l.Lock()
		r.tx.held[id] = l
		if r.tx.s.lockDelay > 0 {
			time.Sleep(r.tx.s.lockDelay)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *memParts) UpdateQuantity(_ context.Context, id string, quantity int) error {
	r.tx.qty[id] = quantity
	r.tx.done()
	return nil
}

func (r *memParts) Update(_ context.Context, p *entity.MachinePart) error {
	s := r.tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.parts[p.ID]
	cur.Name, cur.Price, cur.UpdatedAt = p.Name, p.Price, p.UpdatedAt
	s.parts[p.ID] = cur
	return nil
}

func (r *memParts) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.MachinePart, error) {
	s := r.tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.MachinePart
	for _, p := range s.parts {
		if p.CompanyID == companyID {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memParts) Delete(_ context.Context, id string) error {
	s := r.tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.usages {
		if u.PartID == id {
			return domain.ErrReferentialIntegrity
		}
	}
	delete(s.parts, id)
	return nil
}

// ── PurchaseItemRepository ───────────────────────────────────────────────────

type memPurchases struct{ tx *memTx }

func (r *memPurchases) Create(_ context.Context, p *entity.PurchaseItem) error {
	s := r.tx.s
	s.mu.Lock()
	for _, existing := range s.purchases {
		if existing.CompanyID == p.CompanyID && existing.Invoice == p.Invoice {
			s.mu.Unlock()
			return domain.ErrDuplicate
		}
	}
	s.mu.Unlock()
	for _, staged := range r.tx.newPurch {
		if staged.CompanyID == p.CompanyID && staged.Invoice == p.Invoice {
			return domain.ErrDuplicate
		}
	}
	r.tx.newPurch = append(r.tx.newPurch, *p)
	r.tx.done()
	return nil
}

func (r *memPurchases) GetByID(_ context.Context, id string) (*entity.PurchaseItem, error) {
	s := r.tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.purchases[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memPurchases) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.PurchaseItem, error) {
	s := r.tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.PurchaseItem
	for _, p := range s.purchases {
		if p.CompanyID == companyID {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPurchases) Delete(_ context.Context, id string) error {
	r.tx.delPurch = append(r.tx.delPurch, id)
	r.tx.done()
	return nil
}

// ── PartsUsageRecordRepository ───────────────────────────────────────────────

type memUsages struct{ tx *memTx }

func (r *memUsages) Create(_ context.Context, u *entity.PartsUsageRecord) error {
	r.tx.newUsage = append(r.tx.newUsage, *u)
	r.tx.done()
	return nil
}

func (r *memUsages) GetByID(_ context.Context, id string) (*entity.PartsUsageRecord, error) {
	s := r.tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.usages[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUsages) UpdateRemarks(_ context.Context, id string, remarks *string) error {
	s := r.tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.usages[id]
	u.Remarks = remarks
	s.usages[id] = u
	return nil
}

func (r *memUsages) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.PartsUsageRecord, error) {
	s := r.tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.PartsUsageRecord
	for _, u := range s.usages {
		if u.CompanyID == companyID {
			cp := u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUsages) Delete(_ context.Context, id string) error {
	r.tx.delUsage = append(r.tx.delUsage, id)
	r.tx.done()
	return nil
}

// TotalCost replica el join consumo -> parada -> repuesto de la consulta SQL.
func (r *memUsages) TotalCost(_ context.Context, companyID, lineID string, from, to time.Time) (decimal.Decimal, error) {
	s := r.tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, u := range s.usages {
		b, ok := s.breakdowns[u.BreakdownID]
		if !ok || u.CompanyID != companyID || b.LineID == nil || *b.LineID != lineID {
			continue
		}
		if b.BreakdownStart.Before(from) || !b.BreakdownStart.Before(to) {
			continue
		}
		total = total.Add(s.parts[u.PartID].Price.Mul(decimal.NewFromInt(int64(u.QuantityUsed))))
	}
	return total, nil
}

// ── BreakdownLogRepository ───────────────────────────────────────────────────

type memBreakdowns struct{ s *memStore }

func (r *memBreakdowns) Create(context.Context, *entity.BreakdownLog) error { return nil }
func (r *memBreakdowns) Update(context.Context, *entity.BreakdownLog) error { return nil }
func (r *memBreakdowns) Delete(context.Context, string) error               { return nil }
func (r *memBreakdowns) ListByCompany(context.Context, string, int, int) ([]*entity.BreakdownLog, error) {
	return nil, nil
}

func (r *memBreakdowns) GetByID(_ context.Context, id string) (*entity.BreakdownLog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.breakdowns[id], nil
}
