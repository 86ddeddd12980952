// Package factory provides the generic registry behind the presenters
// listed under output.presenters in the configuration. Each entry names a
// presenter type and carries raw settings; the factory registered for that
// type decodes the settings into a typed struct and returns the presenter.
//
// Example usage:
//
//	reg := factory.NewRegistry[present.Presenter]()
//	reg.Register("json", func(conf map[string]any) (present.Presenter, error) {
//	    var c struct{ Path string `json:"path"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newJSONPresenter(c.Path), nil
//	})
//	p, err := reg.Create(factory.ModuleConfig{Type: "json", Conf: map[string]any{"path": "out.json"}})
package factory
