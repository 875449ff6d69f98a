package db

import (
	"context"
	"net"

	"cloud.google.com/go/cloudsqlconn"
	"github.com/Jeomhps/business-reviews/internal/config"
	"github.com/go-sql-driver/mysql"
)

// registerConnector wires the Cloud SQL dialer into the MySQL driver under
// config.ConnectorNet. The returned func closes the dialer.
func registerConnector(ctx context.Context, instance string, privateIP bool) (func() error, error) {
	d, err := cloudsqlconn.NewDialer(ctx, cloudsqlconn.WithLazyRefresh())
	if err != nil {
		return nil, err
	}
	var opts []cloudsqlconn.DialOption
	if privateIP {
		opts = append(opts, cloudsqlconn.WithPrivateIP())
	}
	mysql.RegisterDialContext(config.ConnectorNet, func(ctx context.Context, _ string) (net.Conn, error) {
		return d.Dial(ctx, instance, opts...)
	})
	return d.Close, nil
}
