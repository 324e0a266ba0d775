package service_test

import (
	"context"
	"testing"

	"plastgest/internal/dto"
	"plastgest/internal/model"
	"plastgest/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// seedReceita registers a recipe for produto with the given constituents.
func seedReceita(t *testing.T, repo *stubReceitaRepo, produtoID uuid.UUID, constituintes ...model.Constituinte) {
	t.Helper()
	rec := &model.Receita{ProdutoID: produtoID}
	require.NoError(t, repo.CreateTx(nil, rec))
	for i := range constituintes {
		constituintes[i].ReceitaID = rec.ID
		constituintes[i].Ordem = i
		require.NoError(t, repo.CreateConstituinteTx(nil, &constituintes[i]))
	}
}

func extrusaoReq(produtoID uuid.UUID, peso decimal.Decimal) dto.FichaExtrusaoRequest {
	return dto.FichaExtrusaoRequest{
		ProdutoID:       produtoID.String(),
		OperadorNome:    "João",
		OperadorCPF:     "11122233344",
		OperadorMaquina: "EXT-01",
		Inicio:          "08:00",
		Termino:         "12:00",
		Peso:            peso,
	}
}

func TestRegistrarExtrusao_ConsomeMateriaisECreditaProduto(t *testing.T) {
	materialA := &model.Produto{Nome: "Polietileno", Tipo: model.TipoMaterial, Quantidade: dec(100)}
	bobinaB := &model.Produto{Nome: "Bobina 30cm", Tipo: model.TipoBobina, Quantidade: dec(0)}
	produtoRepo := newStubProdutoRepo(materialA, bobinaB)
	receitaRepo := newStubReceitaRepo()
	fichaRepo := &stubFichaRepo{}
	seedReceita(t, receitaRepo, bobinaB.ID,
		model.Constituinte{Constituinte: "Polietileno", Percentual: dec(100)})

	svc := service.NewProducaoService(produtoRepo, receitaRepo, fichaRepo)

	resp, err := svc.RegistrarExtrusao(context.Background(), extrusaoReq(bobinaB.ID, dec(30)))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.FichaID)

	assert.True(t, produtoRepo.quantidade(materialA.ID).Equal(dec(70)),
		"material deve cair de 100 para 70")
	assert.True(t, produtoRepo.quantidade(bobinaB.ID).Equal(dec(30)),
		"produto acabado deve ser creditado pelo peso")
	require.Len(t, fichaRepo.extrusoes, 1)
	assert.Equal(t, "Bobina 30cm", fichaRepo.extrusoes[0].Produto)
}

func TestRegistrarExtrusao_EstoqueInsuficiente(t *testing.T) {
	materialA := &model.Produto{Nome: "Polietileno", Tipo: model.TipoMaterial, Quantidade: dec(50)}
	bobinaB := &model.Produto{Nome: "Bobina 30cm", Tipo: model.TipoBobina, Quantidade: dec(10)}
	produtoRepo := newStubProdutoRepo(materialA, bobinaB)
	receitaRepo := newStubReceitaRepo()
	fichaRepo := &stubFichaRepo{}
	seedReceita(t, receitaRepo, bobinaB.ID,
		model.Constituinte{Constituinte: "Polietileno", Percentual: dec(100)})

	svc := service.NewProducaoService(produtoRepo, receitaRepo, fichaRepo)

	_, err := svc.RegistrarExtrusao(context.Background(), extrusaoReq(bobinaB.ID, dec(80)))
	var insuficiente *service.EstoqueInsuficienteError
	require.ErrorAs(t, err, &insuficiente)
	assert.Equal(t, "Polietileno", insuficiente.Produto)

	assert.True(t, produtoRepo.quantidade(materialA.ID).Equal(dec(50)), "estoque não pode mudar")
	assert.True(t, produtoRepo.quantidade(bobinaB.ID).Equal(dec(10)), "produto não pode ser creditado")
	assert.Empty(t, fichaRepo.extrusoes, "nenhuma ficha deve ser gravada")
}

func TestRegistrarExtrusao_VerificaTodosAntesDeDebitar(t *testing.T) {
	// Two-material recipe where only the second lacks stock. The first must
	// not be debited.
	materialA := &model.Produto{Nome: "Polietileno", Tipo: model.TipoMaterial, Quantidade: dec(100)}
	materialB := &model.Produto{Nome: "Pigmento", Tipo: model.TipoMaterial, Quantidade: dec(1)}
	bobina := &model.Produto{Nome: "Bobina 50cm", Tipo: model.TipoBobina, Quantidade: dec(0)}
	produtoRepo := newStubProdutoRepo(materialA, materialB, bobina)
	receitaRepo := newStubReceitaRepo()
	fichaRepo := &stubFichaRepo{}
	seedReceita(t, receitaRepo, bobina.ID,
		model.Constituinte{Constituinte: "Polietileno", Percentual: dec(90)},
		model.Constituinte{Constituinte: "Pigmento", Percentual: dec(10)})

	svc := service.NewProducaoService(produtoRepo, receitaRepo, fichaRepo)

	_, err := svc.RegistrarExtrusao(context.Background(), extrusaoReq(bobina.ID, dec(50)))
	var insuficiente *service.EstoqueInsuficienteError
	require.ErrorAs(t, err, &insuficiente)
	assert.Equal(t, "Pigmento", insuficiente.Produto)

	assert.True(t, produtoRepo.quantidade(materialA.ID).Equal(dec(100)),
		"primeiro material não pode ser debitado quando o segundo falha")
}

func TestRegistrarExtrusao_SemReceita(t *testing.T) {
	bobina := &model.Produto{Nome: "Bobina 30cm", Tipo: model.TipoBobina}
	produtoRepo := newStubProdutoRepo(bobina)
	svc := service.NewProducaoService(produtoRepo, newStubReceitaRepo(), &stubFichaRepo{})

	_, err := svc.RegistrarExtrusao(context.Background(), extrusaoReq(bobina.ID, dec(10)))
	assert.ErrorIs(t, err, service.ErrSemReceita)
}

func TestRegistrarExtrusao_ReceitaVazia(t *testing.T) {
	bobina := &model.Produto{Nome: "Bobina 30cm", Tipo: model.TipoBobina}
	produtoRepo := newStubProdutoRepo(bobina)
	receitaRepo := newStubReceitaRepo()
	seedReceita(t, receitaRepo, bobina.ID)
	svc := service.NewProducaoService(produtoRepo, receitaRepo, &stubFichaRepo{})

	_, err := svc.RegistrarExtrusao(context.Background(), extrusaoReq(bobina.ID, dec(10)))
	assert.ErrorIs(t, err, service.ErrReceitaVazia)
}

func TestRegistrarExtrusao_InsumoNaoEncontrado(t *testing.T) {
	bobina := &model.Produto{Nome: "Bobina 30cm", Tipo: model.TipoBobina}
	produtoRepo := newStubProdutoRepo(bobina)
	receitaRepo := newStubReceitaRepo()
	seedReceita(t, receitaRepo, bobina.ID,
		model.Constituinte{Constituinte: "Inexistente", Percentual: dec(100)})
	svc := service.NewProducaoService(produtoRepo, receitaRepo, &stubFichaRepo{})

	_, err := svc.RegistrarExtrusao(context.Background(), extrusaoReq(bobina.ID, dec(10)))
	var naoEncontrado *service.NaoEncontradoError
	require.ErrorAs(t, err, &naoEncontrado)
	assert.Equal(t, "Inexistente", naoEncontrado.Ref)
}

func TestRegistrarExtrusao_ProdutoNaoEncontrado(t *testing.T) {
	svc := service.NewProducaoService(newStubProdutoRepo(), newStubReceitaRepo(), &stubFichaRepo{})

	_, err := svc.RegistrarExtrusao(context.Background(), extrusaoReq(uuid.New(), dec(10)))
	var naoEncontrado *service.NaoEncontradoError
	assert.ErrorAs(t, err, &naoEncontrado)
}

func corteReq(produtoID uuid.UUID, total decimal.Decimal) dto.FichaCorteRequest {
	return dto.FichaCorteRequest{
		ProdutoID:    produtoID.String(),
		OperadorNome: "Maria",
		OperadorCPF:  "55566677788",
		Maquina:      "CORTE-02",
		Turno:        "manhã",
		SacolaDim:    "30x40",
		Total:        total,
	}
}

func TestRegistrarCorte_CreditaProdutoEAparas(t *testing.T) {
	sacola := &model.Produto{Nome: "Sacola 30x40", Tipo: model.TipoProdutoAcabado, Quantidade: dec(10)}
	aparas := &model.Produto{Nome: "Aparas", Tipo: model.TipoSobras, Quantidade: dec(2)}
	produtoRepo := newStubProdutoRepo(sacola, aparas)
	fichaRepo := &stubFichaRepo{}
	svc := service.NewProducaoService(produtoRepo, newStubReceitaRepo(), fichaRepo)

	req := corteReq(sacola.ID, dec(25))
	sobra := dec(3)
	req.Aparas = &sobra

	resp, err := svc.RegistrarCorte(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.FichaID)

	assert.True(t, produtoRepo.quantidade(sacola.ID).Equal(dec(35)))
	assert.True(t, produtoRepo.quantidade(aparas.ID).Equal(dec(5)))
	require.Len(t, fichaRepo.cortes, 1)
	require.Len(t, fichaRepo.entradas, 1)
	assert.Equal(t, "30x40", fichaRepo.entradas[0].Nome)
	assert.True(t, fichaRepo.entradas[0].Quantidade.Equal(dec(25)))
}

func TestRegistrarCorte_SemProdutoAparas(t *testing.T) {
	// Scrap quantity reported but no scrap product registered: credit is
	// silently skipped.
	sacola := &model.Produto{Nome: "Sacola 30x40", Tipo: model.TipoProdutoAcabado, Quantidade: dec(0)}
	produtoRepo := newStubProdutoRepo(sacola)
	svc := service.NewProducaoService(produtoRepo, newStubReceitaRepo(), &stubFichaRepo{})

	req := corteReq(sacola.ID, dec(10))
	sobra := dec(2)
	req.Aparas = &sobra

	_, err := svc.RegistrarCorte(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, produtoRepo.quantidade(sacola.ID).Equal(dec(10)))
}

func TestRegistrarCorte_DebitaBobina(t *testing.T) {
	sacola := &model.Produto{Nome: "Sacola 30x40", Tipo: model.TipoProdutoAcabado, Quantidade: dec(0)}
	bobina := &model.Produto{Nome: "Bobina 30cm", Tipo: model.TipoBobina, Quantidade: dec(40)}
	produtoRepo := newStubProdutoRepo(sacola, bobina)
	svc := service.NewProducaoService(produtoRepo, newStubReceitaRepo(), &stubFichaRepo{})

	req := corteReq(sacola.ID, dec(25))
	bobinaID := bobina.ID.String()
	req.BobinaID = &bobinaID

	_, err := svc.RegistrarCorte(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, produtoRepo.quantidade(sacola.ID).Equal(dec(25)))
	assert.True(t, produtoRepo.quantidade(bobina.ID).Equal(dec(15)))
}

func TestRegistrarCorte_BobinaInsuficiente(t *testing.T) {
	sacola := &model.Produto{Nome: "Sacola 30x40", Tipo: model.TipoProdutoAcabado, Quantidade: dec(0)}
	bobina := &model.Produto{Nome: "Bobina 30cm", Tipo: model.TipoBobina, Quantidade: dec(5)}
	produtoRepo := newStubProdutoRepo(sacola, bobina)
	fichaRepo := &stubFichaRepo{}
	bindTx(produtoRepo, fichaRepo)
	svc := service.NewProducaoService(produtoRepo, newStubReceitaRepo(), fichaRepo)

	req := corteReq(sacola.ID, dec(25))
	bobinaID := bobina.ID.String()
	req.BobinaID = &bobinaID

	_, err := svc.RegistrarCorte(context.Background(), req)
	var insuficiente *service.EstoqueInsuficienteError
	require.ErrorAs(t, err, &insuficiente)
	assert.Equal(t, "Bobina 30cm", insuficiente.Produto)
	assert.True(t, produtoRepo.quantidade(bobina.ID).Equal(dec(5)))
	assert.True(t, produtoRepo.quantidade(sacola.ID).Equal(dec(0)),
		"crédito do produto deve ser desfeito quando a bobina não cobre o corte")
	assert.Empty(t, fichaRepo.cortes)
	assert.Empty(t, fichaRepo.entradas)
}
