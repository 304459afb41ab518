package app

import (
	"github.com/diewo77/go-interventions/i18n"
	"github.com/diewo77/go-interventions/internal/models"
)

func (a *App) AddClient(c models.Client) (models.Client, error) {
	if err := a.gate(); err != nil {
		return models.Client{}, err
	}
	out := a.Clients.Add(c)
	a.Notifications.Add(models.NotificationInfo, i18n.T(a.lang, "client.added.title"), out.Name)
	return out, nil
}

func (a *App) UpdateClient(c models.Client) error {
	return a.mutate(func() bool { return a.Clients.Update(c) })
}

func (a *App) DeleteClient(id int) error {
	return a.mutate(func() bool { return a.Clients.DeleteByID(id) })
}

// AddClientsBulk appends list with freshly assigned sequential ids.
func (a *App) AddClientsBulk(list []models.Client) ([]models.Client, error) {
	if err := a.gate(); err != nil {
		return nil, err
	}
	return a.Clients.AddBulk(list), nil
}

func (a *App) AddAsset(as models.Asset) (models.Asset, error) {
	if err := a.gate(); err != nil {
		return models.Asset{}, err
	}
	return a.Assets.Add(as), nil
}

func (a *App) UpdateAsset(as models.Asset) error {
	return a.mutate(func() bool { return a.Assets.Update(as) })
}

func (a *App) DeleteAsset(id string) error {
	return a.mutate(func() bool { return a.Assets.Delete(id) })
}

func (a *App) AddAssetsBulk(list []models.Asset) ([]models.Asset, error) {
	if err := a.gate(); err != nil {
		return nil, err
	}
	return a.Assets.AddBulk(list), nil
}

func (a *App) AddArticle(ar models.Article) (models.Article, error) {
	if err := a.gate(); err != nil {
		return models.Article{}, err
	}
	return a.Articles.Add(ar), nil
}

func (a *App) DeleteArticle(id string) error {
	return a.mutate(func() bool { return a.Articles.Delete(id) })
}

func (a *App) AddArticlesBulk(list []models.Article) ([]models.Article, error) {
	if err := a.gate(); err != nil {
		return nil, err
	}
	return a.Articles.AddBulk(list), nil
}

// AddIntervention records iv at the head of the log.
func (a *App) AddIntervention(iv models.Intervention) (models.Intervention, error) {
	if err := a.gate(); err != nil {
		return models.Intervention{}, err
	}
	return a.Interventions.Prepend(iv), nil
}

func (a *App) AddInterventionsBulk(list []models.Intervention) ([]models.Intervention, error) {
	if err := a.gate(); err != nil {
		return nil, err
	}
	return a.Interventions.PrependBulk(list), nil
}

func (a *App) AddService(s string) error {
	return a.mutate(func() bool { return a.Services.Add(s) })
}

func (a *App) DeleteService(s string) error {
	return a.mutate(func() bool { return a.Services.Delete(s) })
}

func (a *App) AddAnomaly(s string) error {
	return a.mutate(func() bool { return a.Anomalies.Add(s) })
}

func (a *App) DeleteAnomaly(s string) error {
	return a.mutate(func() bool { return a.Anomalies.Delete(s) })
}

func (a *App) SetChecklistTemplate(category string, items []string) error {
	if err := a.gate(); err != nil {
		return err
	}
	a.ChecklistTemplates.Set(category, items)
	return nil
}

func (a *App) SetCategoryAnomalies(category string, items []string) error {
	if err := a.gate(); err != nil {
		return err
	}
	a.CategoryAnomalies.Set(category, items)
	return nil
}

// mutate runs fn once loaded and maps a no-op to ErrNotFound.
func (a *App) mutate(fn func() bool) error {
	if err := a.gate(); err != nil {
		return err
	}
	if !fn() {
		return ErrNotFound
	}
	return nil
}
