package labels

import (
	"encoding/json"
	"testing"

	"github.com/dylan/commitlabels/store"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingUsesDefaults(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()
	cfg, err := Load(kv)
	require.NoError(t, err)
	require.Equal(t, DefaultConfiguration(), cfg)
}

func TestLoadUpgradesOlderDocument(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()
	old := `{"removePrefix":false,"commitTypes":{"feat":{"emoji":"✨","label":"Feature","color":"green"}},"labelStyle":{"fontSize":"12px"}}`
	require.NoError(t, kv.Set(ConfigKey, []byte(old)))

	cfg, err := Load(kv)
	require.NoError(t, err)
	require.False(t, cfg.RemovePrefix)
	require.True(t, cfg.EnableTooltips)
	require.True(t, cfg.LabelsVisible)
	require.False(t, cfg.ShowScope)
	require.True(t, cfg.ShowFloatingButton)
	require.Equal(t, map[string]string{"fontSize": "12px"}, cfg.LabelStyle)
	require.Len(t, cfg.CommitTypes, 1)

	raw, ok, err := kv.Get(ConfigKey)
	require.NoError(t, err)
	require.True(t, ok)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Contains(t, doc, "showFloatingButton")
	require.Contains(t, doc, "enableTooltips")

	again, err := Load(kv)
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestLoadUnreadableDocumentKeepsStore(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()
	require.NoError(t, kv.Set(ConfigKey, []byte("{not json")))

	cfg, err := Load(kv)
	require.NoError(t, err)
	require.Equal(t, DefaultConfiguration(), cfg)

	raw, _, _ := kv.Get(ConfigKey)
	require.Equal(t, "{not json", string(raw))
}

func TestSaveAndReset(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()
	cfg := DefaultConfiguration()
	cfg.ShowScope = true
	delete(cfg.CommitTypes, "wip")
	require.NoError(t, Save(kv, cfg))

	loaded, err := Load(kv)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	reset, err := Reset(kv)
	require.NoError(t, err)
	loaded, err = Load(kv)
	require.NoError(t, err)
	require.Equal(t, reset, loaded)
	require.Contains(t, loaded.CommitTypes, "wip")
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfiguration()
	cfg.RemovePrefix = false
	cfg.ShowScope = true
	cfg.CommitTypes["sec"] = TypeStyle{Emoji: "🔒", Label: "Security", Color: "red"}

	text, err := Export(cfg)
	require.NoError(t, err)
	require.Contains(t, string(text), "\n  \"removePrefix\": false")

	back, err := Import(text)
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}

func TestExportImportKeepsTrimmedLabelStyle(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfiguration()
	delete(cfg.LabelStyle, "backdropFilter")

	text, err := Export(cfg)
	require.NoError(t, err)
	back, err := Import(text)
	require.NoError(t, err)
	require.Equal(t, cfg, back)
	require.NotContains(t, back.LabelStyle, "backdropFilter")

	kv := store.NewMemory()
	require.NoError(t, Save(kv, back))
	loaded, err := Load(kv)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	noStyle, err := Import([]byte(`{"commitTypes":{"feat":{"emoji":"✨","label":"Feature","color":"green"}}}`))
	require.NoError(t, err)
	require.Equal(t, DefaultLabelStyle(), noStyle.LabelStyle)
}

func TestImportLowercasesTypeTokens(t *testing.T) {
	t.Parallel()

	cfg, err := Import([]byte(`{"commitTypes":{"Feat":{"emoji":"✨","label":"Feature","color":"green"}}}`))
	require.NoError(t, err)
	require.Contains(t, cfg.CommitTypes, "feat")
	require.NotContains(t, cfg.CommitTypes, "Feat")

	_, ok := NewRegistry(cfg.CommitTypes).Resolve("feat")
	require.True(t, ok)

	var invalid *InvalidTokenError
	_, err = Import([]byte(`{"commitTypes":{"new feature":{"label":"Feature","color":"green"}}}`))
	require.ErrorIs(t, err, ErrInvalidImport)
	require.ErrorAs(t, err, &invalid)

	_, err = Import([]byte(`{"commitTypes":{"feat":{"label":"A","color":"green"},"FEAT":{"label":"B","color":"blue"}}}`))
	require.ErrorIs(t, err, ErrInvalidImport)
}

func TestImportRejectsInvalidText(t *testing.T) {
	t.Parallel()

	for name, text := range map[string]string{
		"empty":           "  ",
		"not json":        "commitTypes",
		"not an object":   "[1,2]",
		"no commitTypes":  `{"removePrefix":true}`,
		"null types":      `{"commitTypes":null}`,
		"empty types":     `{"commitTypes":{}}`,
		"wrong type kind": `{"commitTypes":"feat"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Import([]byte(text))
			require.ErrorIs(t, err, ErrInvalidImport)
		})
	}
}

func TestImportAndSaveLeavesStoreOnRejection(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()
	require.NoError(t, Save(kv, DefaultConfiguration()))
	before, _, _ := kv.Get(ConfigKey)

	_, err := ImportAndSave(kv, []byte(`{"labelsVisible":false}`))
	require.ErrorIs(t, err, ErrInvalidImport)
	after, _, _ := kv.Get(ConfigKey)
	require.Equal(t, before, after)

	cfg, err := ImportAndSave(kv, []byte(`{"labelsVisible":false,"commitTypes":{"feat":{"emoji":"✨","label":"Feature","color":"green"}}}`))
	require.NoError(t, err)
	require.False(t, cfg.LabelsVisible)
	require.True(t, cfg.RemovePrefix)

	loaded, err := Load(kv)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}
