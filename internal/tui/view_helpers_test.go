package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/usina-ipiranga/caldo-console/models"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "curto", fitText("curto", 10))
	assert.Equal(t, "decanta...", fitText("decantador primario", 10))
	assert.Equal(t, "dec", fitText("decantador", 3))
	assert.Equal(t, "decantador", fitText("decantador", 0))
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash("  "))
	assert.Equal(t, "moenda 02", valueOrDash("moenda 02"))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 1234,50", formatCurrency(1234.5))
	assert.Equal(t, "R$ 0,00", formatCurrency(0))
}

func TestFormatDate_Zero(t *testing.T) {
	assert.Equal(t, "-", formatDate(time.Time{}))
	assert.Equal(t, "-", formatDateFull(time.Time{}))
}

func TestWrapText(t *testing.T) {
	lines := wrapText("vazamento na bomba de caldo clarificado do decantador", 20)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 20)
	}
	assert.Equal(t, []string{"-"}, wrapText("   ", 20))
}

func TestLifecycleLabels(t *testing.T) {
	assert.Equal(t, "Aberta", occurrenceStatusLabel(models.StatusAberta))
	assert.Equal(t, "Em andamento", occurrenceStatusLabel(models.StatusAndamento))
	assert.Equal(t, "Resolvida", occurrenceStatusLabel(models.StatusResolvida))
	assert.Equal(t, "custom", occurrenceStatusLabel("custom"))

	assert.Equal(t, "Pendente", workOrderStatusLabel(models.WorkOrderPending))
	assert.Equal(t, "Em execução", workOrderStatusLabel(models.WorkOrderInProgress))
	assert.Equal(t, "Concluída", workOrderStatusLabel(models.WorkOrderCompleted))
}
