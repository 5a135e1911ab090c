package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Setplays/Administracao-de-remedios/internal/notify"
	"github.com/Setplays/Administracao-de-remedios/internal/repository"
)

// recordingDispatcher captures deliveries; optionally fails every call.
type recordingDispatcher struct {
	mu        sync.Mutex
	mensagens []string
	err       error
}

func (d *recordingDispatcher) Deliver(titulo, mensagem string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mensagens = append(d.mensagens, mensagem)
	return d.err
}

func (d *recordingDispatcher) entregues() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.mensagens...)
}

func newTestScanner(env *testEnv, disp notify.Dispatcher, status notify.Status) *Scanner {
	s := NewScanner(ScannerConfig{
		Remedios:   repository.NewRemedioRepository(env.db),
		Dispatcher: disp,
		Status:     status,
		LimiteDias: 5,
	})
	s.sleep = func(context.Context, time.Duration) {} // sem pausas no teste
	return s
}

func TestScanAlertaEstoqueBaixo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// 8 / 2 = 4 dias restantes, dentro do limite de 5
	_, err := env.svc.Cadastrar(ctx, "Aspirina", dec("2"), dec("8"), "comprimido")
	require.NoError(t, err)

	disp := &recordingDispatcher{}
	s := newTestScanner(env, disp, notify.StatusReady)
	require.NoError(t, s.ScanAndAlert(ctx))

	entregues := disp.entregues()
	require.Len(t, entregues, 1, "exatamente um alerta por remédio por varredura")
	assert.Contains(t, entregues[0], "Aspirina")
	assert.Contains(t, entregues[0], "4 dias")
	assert.Contains(t, entregues[0], "comprimido")
}

func TestScanIgnoraEstoqueConfortavel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// 12 / 2 = 6 dias, acima do limite
	_, err := env.svc.Cadastrar(ctx, "Omeprazol", dec("2"), dec("12"), "")
	require.NoError(t, err)

	disp := &recordingDispatcher{}
	s := newTestScanner(env, disp, notify.StatusReady)
	require.NoError(t, s.ScanAndAlert(ctx))
	assert.Empty(t, disp.entregues())
}

func TestScanIgnoraEsgotadoEDoseZero(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// esgotado não é "pouco": já acabou, nada a avisar
	_, err := env.svc.Cadastrar(ctx, "Acabado", dec("2"), decimal.Zero, "")
	require.NoError(t, err)

	disp := &recordingDispatcher{}
	s := newTestScanner(env, disp, notify.StatusReady)
	require.NoError(t, s.ScanAndAlert(ctx))
	assert.Empty(t, disp.entregues())
}

func TestScanTransporteIndisponivelNaoFazNada(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Cadastrar(ctx, "Aspirina", dec("2"), dec("8"), "")
	require.NoError(t, err)

	disp := &recordingDispatcher{}
	s := newTestScanner(env, disp, notify.StatusUnavailable)
	require.NoError(t, s.ScanAndAlert(ctx))
	assert.Empty(t, disp.entregues())
}

func TestScanEngoleFalhaDeEntrega(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Cadastrar(ctx, "Aspirina", dec("2"), dec("8"), "")
	require.NoError(t, err)
	_, err = env.svc.Cadastrar(ctx, "Dipirona", dec("3"), dec("9"), "")
	require.NoError(t, err)

	disp := &recordingDispatcher{err: errors.New("toast travado")}
	s := newTestScanner(env, disp, notify.StatusReady)

	// a varredura segue para o próximo remédio e não propaga o erro
	require.NoError(t, s.ScanAndAlert(ctx))
	assert.Len(t, disp.entregues(), 2)
}

func TestScanVariosAlertasNaMesmaVarredura(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Cadastrar(ctx, "Aspirina", dec("2"), dec("8"), "")
	require.NoError(t, err)
	_, err = env.svc.Cadastrar(ctx, "Dipirona", dec("3"), dec("3"), "")
	require.NoError(t, err)
	_, err = env.svc.Cadastrar(ctx, "Folgado", dec("1"), dec("90"), "")
	require.NoError(t, err)

	disp := &recordingDispatcher{}
	s := newTestScanner(env, disp, notify.StatusReady)
	require.NoError(t, s.ScanAndAlert(ctx))
	assert.Len(t, disp.entregues(), 2)
}

// A varredura lê por um handle próprio enquanto a UI escreve pelo dela;
// nenhuma atualização pode se perder.
func TestScanConcorrenteComAdicaoNaoPerdeAtualizacao(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	r, err := env.svc.Cadastrar(ctx, "Aspirina", dec("2"), dec("8"), "")
	require.NoError(t, err)

	// handle independente para a tarefa de fundo, como no processo real
	workerEnv := newTestEnvAt(t, env.path)
	disp := &recordingDispatcher{}
	s := newTestScanner(workerEnv, disp, notify.StatusReady)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, s.ScanAndAlert(ctx))
	}()
	go func() {
		defer wg.Done()
		_, err := env.svc.AdicionarEstoque(ctx, r.ID, dec("5"))
		assert.NoError(t, err)
	}()
	wg.Wait()

	r, err = env.svc.Obter(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, r.EstoqueAtual.Equal(dec("13")),
		"estoque deve refletir o efeito líquido, veio %s", r.EstoqueAtual)
}
