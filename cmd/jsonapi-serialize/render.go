package main

import (
	"github.com/spf13/cobra"

	"github.com/neuronlabs/jsonapi-serializer/encoding/jsonapi"
	"github.com/neuronlabs/jsonapi-serializer/internal/fixture"
	"github.com/neuronlabs/jsonapi-serializer/mapping"
)

type renderOptions struct {
	*rootOptions
	fixture  string
	typ      string
	ids      []string
	includes string
	indent   bool
}

func newRenderCmd(rootOpts *rootOptions) *cobra.Command {
	opts := &renderOptions{rootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Renders the document for the fixture objects.",
		Long: `Renders the JSON:API document for the objects of given type loaded from the yaml fixture.
The included resources are selected with the JSON:API 'include' parameter i.e.:

jsonapi-serialize render --fixture blog.yaml --type authors --id 1 --include "tags,posts.tags"

If no identifier is provided all objects of given type are rendered as the collection.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.render(cmd)
		},
	}
	cmd.Flags().StringVarP(&opts.fixture, "fixture", "f", "", "path to the yaml fixture file")
	cmd.Flags().StringVarP(&opts.typ, "type", "t", "", "resource type of the primary data")
	cmd.Flags().StringSliceVar(&opts.ids, "id", nil, "identifiers of the primary resources")
	cmd.Flags().StringVarP(&opts.includes, "include", "i", "", "comma separated list of the included relationship paths")
	cmd.Flags().BoolVar(&opts.indent, "indent", false, "indents the rendered document")
	_ = cmd.MarkFlagRequired("fixture")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func (o *renderOptions) render(cmd *cobra.Command) error {
	cfg, err := o.serializerConfig()
	if err != nil {
		return err
	}
	naming, err := cfg.Naming()
	if err != nil {
		return err
	}

	f, err := fixture.LoadFile(o.fixture, naming)
	if err != nil {
		return err
	}
	s, err := jsonapi.New(f.Registry, jsonapi.WithConfig(cfg))
	if err != nil {
		return err
	}

	var result *jsonapi.Result
	switch len(o.ids) {
	case 0:
		result, err = s.SerializeMany(o.typ, f.Objects(o.typ), o.includes)
	case 1:
		var object mapping.Object
		if object, err = f.Object(o.typ, o.ids[0]); err != nil {
			return err
		}
		result, err = s.Serialize(o.typ, object, o.includes)
	default:
		objects := make([]mapping.Model, len(o.ids))
		for i, id := range o.ids {
			object, err := f.Object(o.typ, id)
			if err != nil {
				return err
			}
			objects[i] = object
		}
		result, err = s.SerializeMany(o.typ, objects, o.includes)
	}
	if err != nil {
		return err
	}

	if o.indent {
		return jsonapi.MarshalIndent(cmd.OutOrStdout(), result)
	}
	return jsonapi.Marshal(cmd.OutOrStdout(), result)
}
