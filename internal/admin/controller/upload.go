package controller

import (
	"context"
	"fmt"
)

// LocalFile — файл, выбранный пользователем для загрузки.
type LocalFile struct {
	Name string
	Data []byte
}

// UploadAll загружает файлы по одному в порядке выбора и возвращает
// URL успешно загруженных. Отказ одного файла не откатывает остальные:
// частичный результат сохраняется, а обо всех отказах сообщает ровно
// одно уведомление об ошибке.
func UploadAll(ctx context.Context, up Uploader, dir string, files []LocalFile, n Notifier) []string {
	urls := make([]string, 0, len(files))
	failed := 0
	for _, f := range files {
		url, err := up.Upload(ctx, dir, f.Name, f.Data)
		if err != nil {
			failed++
			continue
		}
		urls = append(urls, url)
	}
	if failed > 0 {
		n.Notify("Error", fmt.Sprintf("failed to upload %d of %d file(s)", failed, len(files)), SeverityError)
	} else if len(urls) > 0 {
		n.Notify("Success", fmt.Sprintf("%d image(s) uploaded", len(urls)), SeveritySuccess)
	}
	return urls
}

// UploadFiles прогоняет файлы через конвейер загрузки и добавляет
// полученные URL в черновик открытой формы.
func (c *Controller[E, D]) UploadFiles(ctx context.Context, files []LocalFile) error {
	if c.state.Phase != PhaseCreating && c.state.Phase != PhaseEditing {
		return ErrFormClosed
	}
	if c.desc.Assets == nil {
		return fmt.Errorf("%s does not accept file uploads", c.desc.Table)
	}
	if c.uploader == nil {
		return fmt.Errorf("no uploader configured")
	}
	urls := UploadAll(ctx, c.uploader, c.desc.Assets.Dir, files, c.notifier)
	if len(urls) > 0 {
		c.desc.Assets.Append(&c.draft, urls)
	}
	return nil
}

// RemoveAsset убирает URL из черновика открытой формы. Сам объект в
// хранилище не трогаем: запись могла ссылаться на него до правки.
func (c *Controller[E, D]) RemoveAsset(url string) error {
	if c.state.Phase != PhaseCreating && c.state.Phase != PhaseEditing {
		return ErrFormClosed
	}
	if c.desc.Assets == nil {
		return fmt.Errorf("%s does not accept file uploads", c.desc.Table)
	}
	c.desc.Assets.Remove(&c.draft, url)
	return nil
}
