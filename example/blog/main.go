package main

// The blog example serves the GraphQL schema generated for its models at /schema and, at /sql,
// shows the SQL that each top-level query field of a GraphQL request would be resolved with.
// Eg: curl localhost:8080/sql -d '{ posts(limit: 10, order: "reverse:created", where: {status: {ne: "draft"}}) { title } }'

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andrewwphillips/eggorm"
	"github.com/andrewwphillips/eggorm/sqlfind"
)

type (
	Author struct {
		ID    int    `orm:"id:INTEGER,pk"`
		Name  string `orm:",#The author's full name"`
		Email *string
	}

	Post struct {
		ID       uuid.UUID `orm:"id,pk"`
		AuthorID int       `orm:"authorID:INTEGER"`
		Title    string
		Body     string `orm:"body:TEXT"`
		Status   string `orm:"status:ENUM(draft,published,on hold)"`
		Tags     []string
		Created  time.Time
	}
)

type source struct {
	model eggorm.Model
	table string
}

// sources maps the name of each query field (eg "post" and "posts") to the model and table it reads
var sources = make(map[string]source)

func init() {
	for _, m := range []eggorm.Model{eggorm.MustModelOf(Author{}), eggorm.MustModelOf(Post{})} {
		one := strings.ToLower(m.Name())
		sources[one] = source{model: m, table: one + "s"}
		sources[one+"s"] = sources[one]
	}
}

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	schema := eggorm.MustSchema(Author{}, Post{}, eggorm.CommentToDescription(true), eggorm.WithLogger(logger))
	http.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, schema)
	})
	http.HandleFunc("/sql", func(w http.ResponseWriter, r *http.Request) {
		query, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		out, err := toSQL(string(query), logger)
		if err != nil {
			logger.Info("query rejected", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		io.WriteString(w, out)
	})
	logger.Info("listening", zap.String("addr", ":8080"))
	if err := http.ListenAndServe(":8080", nil); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// toSQL returns a SELECT statement (and its parameters) for each top-level field of the query
func toSQL(query string, logger *zap.Logger) (string, error) {
	root, err := eggorm.SimplifyQuery(query, map[string]any{})
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for key, node := range root.Fields {
		name := key
		if node.Key != "" {
			name = node.Key
		}
		src, ok := sources[name]
		if !ok {
			return "", fmt.Errorf("unknown query %q", name)
		}
		attrs := make([]string, 0, len(src.model.Attributes()))
		for _, a := range src.model.Attributes() {
			attrs = append(attrs, a.Name)
		}
		opts, err := eggorm.ArgsToFindOptions(node.Args, attrs, eggorm.WithLogger(logger))
		if err != nil {
			return "", err
		}
		builder, err := sqlfind.Build(src.table, opts, sqlfind.Columns(node, src.model)...)
		if err != nil {
			return "", err
		}
		s, params, err := builder.ToSql()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s: %s %v\n", key, s, params)
	}
	return b.String(), nil
}
