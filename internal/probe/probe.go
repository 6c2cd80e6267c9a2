// Package probe checks that the services behind an initialized Firebase app
// can be reached with its credentials.
package probe

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	"firebase.google.com/go/v4/db"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Result struct {
	Target string
	OK     bool
	Detail string
}

func (r Result) String() string {
	state := "ok"
	if !r.OK {
		state = "FAIL"
	}
	return fmt.Sprintf("%-4s %s: %s", state, r.Target, r.Detail)
}

// Getter reads the value of a Realtime Database node. *db.Ref implements it.
type Getter interface {
	Get(ctx context.Context, v interface{}) error
}

func RealtimeDatabase(ctx context.Context, client *db.Client, path string) Result {
	return readNode(ctx, "database "+path, client.NewRef(path))
}

func readNode(ctx context.Context, target string, node Getter) Result {
	var v interface{}
	if err := node.Get(ctx, &v); err != nil {
		return Result{Target: target, Detail: err.Error()}
	}
	return Result{Target: target, OK: true, Detail: describe(v)}
}

// describe summarizes a decoded node without printing its contents.
func describe(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "empty"
	case map[string]interface{}:
		return fmt.Sprintf("object with %d children", len(x))
	case []interface{}:
		return fmt.Sprintf("array of %d", len(x))
	case string:
		return fmt.Sprintf("string of %d bytes", len(x))
	case bool:
		return fmt.Sprintf("bool %t", x)
	case float64:
		return fmt.Sprintf("number %g", x)
	default:
		return fmt.Sprintf("%T", x)
	}
}

// Firestore reads one document. A missing document still proves the
// database is reachable.
func Firestore(ctx context.Context, client *firestore.Client, docPath string) Result {
	target := "firestore " + docPath

	doc := client.Doc(docPath)
	if doc == nil {
		return Result{Target: target, Detail: "not a document path"}
	}

	dsnap, err := doc.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Result{Target: target, OK: true, Detail: "reachable, document missing"}
		}
		return Result{Target: target, Detail: err.Error()}
	}

	return Result{Target: target, OK: true, Detail: fmt.Sprintf("document with %d fields", len(dsnap.Data()))}
}

func Bucket(ctx context.Context, bucket *gcs.BucketHandle) Result {
	attrs, err := bucket.Attrs(ctx)
	if err != nil {
		return Result{Target: "storage", Detail: err.Error()}
	}
	return Result{
		Target: "storage " + attrs.Name,
		OK:     true,
		Detail: fmt.Sprintf("location %s, class %s", attrs.Location, attrs.StorageClass),
	}
}
