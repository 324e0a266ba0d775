package service_test

import (
	"context"
	"time"

	"plastgest/internal/model"
	"plastgest/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────
// In-memory repository stubs. Transaction runs the body with a nil handle,
// which the Tx variants ignore. Tests that assert state after a failed
// transaction wire the stores together with bindTx so an error restores
// every store to its pre-transaction state, mirroring a database rollback.

// snapshotter captures a store's state and returns the restore closure.
type snapshotter interface {
	snapshot() func()
}

type stubTx struct{ stores []snapshotter }

func (t *stubTx) run(fn func(tx *gorm.DB) error) error {
	restores := make([]func(), len(t.stores))
	for i, s := range t.stores {
		restores[i] = s.snapshot()
	}
	if err := fn(nil); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	return nil
}

// bindTx gives the transaction-owning stubs rollback semantics over every
// store listed, including stores that only participate in the transaction.
func bindTx(stores ...snapshotter) {
	tx := &stubTx{stores: stores}
	for _, s := range stores {
		switch r := s.(type) {
		case *stubProdutoRepo:
			r.tx = tx
		case *stubVendaRepo:
			r.tx = tx
		}
	}
}

type stubProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
	tx       *stubTx
}

func newStubProdutoRepo(produtos ...*model.Produto) *stubProdutoRepo {
	r := &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
	for _, p := range produtos {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.produtos[p.ID] = p
	}
	return r
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	return r.CreateTx(nil, p)
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	return r.FindByIDForUpdateTx(nil, id)
}

func (r *stubProdutoRepo) FindAll(_ context.Context) ([]model.Produto, error) {
	out := make([]model.Produto, 0, len(r.produtos))
	for _, p := range r.produtos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) CreateTx(_ *gorm.DB, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProdutoRepo) FindByNomeForUpdateTx(_ *gorm.DB, nome string) (*model.Produto, error) {
	for _, p := range r.produtos {
		if p.Nome == nome {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProdutoRepo) FindByTipoTx(_ *gorm.DB, tipo model.TipoProduto) ([]model.Produto, error) {
	var out []model.Produto
	for _, p := range r.produtos {
		if p.Tipo == tipo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProdutoRepo) AjustarQuantidadeTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	p, ok := r.produtos[id]
	if !ok {
		return repository.ErrAjusteNegativo
	}
	nova := p.Quantidade.Add(delta)
	if nova.IsNegative() {
		return repository.ErrAjusteNegativo
	}
	p.Quantidade = nova
	return nil
}

func (r *stubProdutoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := r.produtos[id]; !ok {
		return 0, nil
	}
	delete(r.produtos, id)
	return 1, nil
}

func (r *stubProdutoRepo) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	if r.tx != nil {
		return r.tx.run(fn)
	}
	return fn(nil)
}

func (r *stubProdutoRepo) snapshot() func() {
	saved := make(map[uuid.UUID]model.Produto, len(r.produtos))
	for id, p := range r.produtos {
		saved[id] = *p
	}
	return func() {
		r.produtos = make(map[uuid.UUID]*model.Produto, len(saved))
		for id, p := range saved {
			cp := p
			r.produtos[id] = &cp
		}
	}
}

func (r *stubProdutoRepo) quantidade(id uuid.UUID) decimal.Decimal {
	return r.produtos[id].Quantidade
}

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

type stubReceitaRepo struct {
	receitas      map[uuid.UUID]*model.Receita // keyed by produto id
	constituintes map[uuid.UUID][]model.Constituinte
}

func newStubReceitaRepo() *stubReceitaRepo {
	return &stubReceitaRepo{
		receitas:      make(map[uuid.UUID]*model.Receita),
		constituintes: make(map[uuid.UUID][]model.Constituinte),
	}
}

func (r *stubReceitaRepo) FindAll(_ context.Context) ([]model.Receita, error) {
	out := make([]model.Receita, 0, len(r.receitas))
	for _, rec := range r.receitas {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *stubReceitaRepo) FindAllConstituintes(_ context.Context) ([]model.Constituinte, error) {
	var out []model.Constituinte
	for _, cs := range r.constituintes {
		out = append(out, cs...)
	}
	return out, nil
}

func (r *stubReceitaRepo) FindByProdutoTx(_ *gorm.DB, produtoID uuid.UUID) (*model.Receita, error) {
	rec, ok := r.receitas[produtoID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *stubReceitaRepo) CreateTx(_ *gorm.DB, rec *model.Receita) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.receitas[rec.ProdutoID] = rec
	return nil
}

func (r *stubReceitaRepo) ConstituintesTx(_ *gorm.DB, receitaID uuid.UUID) ([]model.Constituinte, error) {
	return r.constituintes[receitaID], nil
}

func (r *stubReceitaRepo) CreateConstituinteTx(_ *gorm.DB, c *model.Constituinte) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.constituintes[c.ReceitaID] = append(r.constituintes[c.ReceitaID], *c)
	return nil
}

func (r *stubReceitaRepo) DeleteConstituintesTx(_ *gorm.DB, receitaID uuid.UUID) error {
	delete(r.constituintes, receitaID)
	return nil
}

func (r *stubReceitaRepo) DeleteConstituintesByProdutoTx(_ *gorm.DB, produtoID uuid.UUID) error {
	if rec, ok := r.receitas[produtoID]; ok {
		delete(r.constituintes, rec.ID)
	}
	return nil
}

func (r *stubReceitaRepo) DeleteByProdutoTx(_ *gorm.DB, produtoID uuid.UUID) error {
	delete(r.receitas, produtoID)
	return nil
}

func (r *stubReceitaRepo) snapshot() func() {
	receitas := make(map[uuid.UUID]model.Receita, len(r.receitas))
	for id, rec := range r.receitas {
		receitas[id] = *rec
	}
	constituintes := make(map[uuid.UUID][]model.Constituinte, len(r.constituintes))
	for id, cs := range r.constituintes {
		constituintes[id] = append([]model.Constituinte(nil), cs...)
	}
	return func() {
		r.receitas = make(map[uuid.UUID]*model.Receita, len(receitas))
		for id, rec := range receitas {
			cp := rec
			r.receitas[id] = &cp
		}
		r.constituintes = constituintes
	}
}

var _ repository.ReceitaRepository = (*stubReceitaRepo)(nil)

type stubFichaRepo struct {
	extrusoes []model.FichaExtrusao
	cortes    []model.FichaCorte
	entradas  []model.HistoricoEntrada
}

func (r *stubFichaRepo) CreateExtrusaoTx(_ *gorm.DB, f *model.FichaExtrusao) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.extrusoes = append(r.extrusoes, *f)
	return nil
}

func (r *stubFichaRepo) CreateCorteTx(_ *gorm.DB, f *model.FichaCorte) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.cortes = append(r.cortes, *f)
	return nil
}

func (r *stubFichaRepo) CreateEntradaTx(_ *gorm.DB, h *model.HistoricoEntrada) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.entradas = append(r.entradas, *h)
	return nil
}

func (r *stubFichaRepo) snapshot() func() {
	extrusoes := append([]model.FichaExtrusao(nil), r.extrusoes...)
	cortes := append([]model.FichaCorte(nil), r.cortes...)
	entradas := append([]model.HistoricoEntrada(nil), r.entradas...)
	return func() {
		r.extrusoes = extrusoes
		r.cortes = cortes
		r.entradas = entradas
	}
}

var _ repository.FichaRepository = (*stubFichaRepo)(nil)

type stubVendaRepo struct {
	vendas         map[uuid.UUID]*model.Venda
	itens          []model.ItemVenda
	historicos     map[uuid.UUID]*model.HistoricoVenda
	historicoItens []model.HistoricoVendaItem
	itensRemovidos []uuid.UUID
	tx             *stubTx
}

func newStubVendaRepo() *stubVendaRepo {
	return &stubVendaRepo{
		vendas:     make(map[uuid.UUID]*model.Venda),
		historicos: make(map[uuid.UUID]*model.HistoricoVenda),
	}
}

func (r *stubVendaRepo) CreateTx(_ *gorm.DB, v *model.Venda) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vendas[v.ID] = v
	return nil
}

func (r *stubVendaRepo) CreateItemTx(_ *gorm.DB, item *model.ItemVenda) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.itens = append(r.itens, *item)
	return nil
}

func (r *stubVendaRepo) UpdateValorTotalTx(_ *gorm.DB, id uuid.UUID, total decimal.Decimal) error {
	if v, ok := r.vendas[id]; ok {
		v.ValorTotal = total
	}
	return nil
}

func (r *stubVendaRepo) CreateHistoricoTx(_ *gorm.DB, h *model.HistoricoVenda) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	h.VendidoEm = time.Now()
	r.historicos[h.ID] = h
	return nil
}

func (r *stubVendaRepo) CreateHistoricoItemTx(_ *gorm.DB, item *model.HistoricoVendaItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.historicoItens = append(r.historicoItens, *item)
	return nil
}

func (r *stubVendaRepo) DeleteItensByProdutoTx(_ *gorm.DB, produtoID uuid.UUID) error {
	r.itensRemovidos = append(r.itensRemovidos, produtoID)
	kept := r.itens[:0]
	for _, item := range r.itens {
		if item.ProdutoID != produtoID {
			kept = append(kept, item)
		}
	}
	r.itens = kept
	return nil
}

func (r *stubVendaRepo) FindHistoricoByID(_ context.Context, id uuid.UUID) (*model.HistoricoVenda, error) {
	h, ok := r.historicos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *h
	for _, item := range r.historicoItens {
		if item.HistoricoVendaID == h.ID {
			cp.Itens = append(cp.Itens, item)
		}
	}
	return &cp, nil
}

func (r *stubVendaRepo) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	if r.tx != nil {
		return r.tx.run(fn)
	}
	return fn(nil)
}

func (r *stubVendaRepo) snapshot() func() {
	vendas := make(map[uuid.UUID]model.Venda, len(r.vendas))
	for id, v := range r.vendas {
		vendas[id] = *v
	}
	historicos := make(map[uuid.UUID]model.HistoricoVenda, len(r.historicos))
	for id, h := range r.historicos {
		historicos[id] = *h
	}
	itens := append([]model.ItemVenda(nil), r.itens...)
	historicoItens := append([]model.HistoricoVendaItem(nil), r.historicoItens...)
	itensRemovidos := append([]uuid.UUID(nil), r.itensRemovidos...)
	return func() {
		r.vendas = make(map[uuid.UUID]*model.Venda, len(vendas))
		for id, v := range vendas {
			cp := v
			r.vendas[id] = &cp
		}
		r.historicos = make(map[uuid.UUID]*model.HistoricoVenda, len(historicos))
		for id, h := range historicos {
			cp := h
			r.historicos[id] = &cp
		}
		r.itens = itens
		r.historicoItens = historicoItens
		r.itensRemovidos = itensRemovidos
	}
}

var _ repository.VendaRepository = (*stubVendaRepo)(nil)

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo(clientes ...*model.Cliente) *stubClienteRepo {
	r := &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
	for _, c := range clientes {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		r.clientes[c.ID] = c
	}
	return r
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubClienteRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubClienteRepo) FindAll(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
	criarErr error
}

func newStubUsuarioRepo(usuarios ...*model.Usuario) *stubUsuarioRepo {
	r := &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
	for _, u := range usuarios {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		r.usuarios[u.ID] = u
	}
	return r
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if r.criarErr != nil {
		return r.criarErr
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUsuarioRepo) FindByCPF(_ context.Context, cpf string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.CPF == cpf {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindAll(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.usuarios[id]; !ok {
		return 0, nil
	}
	delete(r.usuarios, id)
	return 1, nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

type stubTokenRepo struct {
	tokens map[string]uuid.UUID
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{tokens: make(map[string]uuid.UUID)}
}

func (r *stubTokenRepo) Salvar(_ context.Context, token string, userID uuid.UUID, _ time.Duration) error {
	r.tokens[token] = userID
	return nil
}

func (r *stubTokenRepo) Buscar(_ context.Context, token string) (uuid.UUID, error) {
	id, ok := r.tokens[token]
	if !ok {
		return uuid.Nil, repository.ErrTokenNaoEncontrado
	}
	return id, nil
}

func (r *stubTokenRepo) Remover(_ context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

var _ repository.TokenRepository = (*stubTokenRepo)(nil)
