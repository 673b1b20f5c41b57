package client

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/challenai/hbasemap/thrift/hbase"
	"github.com/pkg/errors"
)

// Kind selects how Thrift messages are carried to the gateway.
type Kind string

const (
	// Buffered is a buffered byte stream over a TCP socket.
	Buffered Kind = "buffered"
	// Framed prefixes every message with its length, over a TCP socket.
	Framed Kind = "framed"
	// HTTP posts every message to the gateway's HTTP endpoint.
	HTTP Kind = "http"
)

const bufferSize = 4096

// Valid reports whether k names a supported transport.
func (k Kind) Valid() bool {
	switch k {
	case Buffered, Framed, HTTP:
		return true
	}
	return false
}

// http Header attached to HBase client
// for example, some cloud service provider HBase instances need some authrization headers.
type Header struct {
	Key, Value string
}

// RoundTrip implemnt http RoundTripper interface
type RoundTripper struct {
	Headers []Header
	Next    http.RoundTripper
}

// RoundTrip implemnt http RoundTripper interface
func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	for _, header := range rt.Headers {
		req.Header.Add(header.Key, header.Value)
	}
	next := rt.Next
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(req)
}

// Options describe one gateway endpoint.
type Options struct {
	Host    string
	Port    int
	Timeout time.Duration
	Kind    Kind
	// Headers are only sent by the HTTP transport.
	Headers []Header
}

// Address is the host:port of the gateway.
func (o *Options) Address() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

// New builds an unopened transport and an Hbase client bound to it.
func New(o *Options) (thrift.TTransport, *hbase.HbaseClient, error) {
	trans, err := newTransport(o)
	if err != nil {
		return nil, nil, err
	}
	proto := thrift.NewTBinaryProtocol(trans, false, true)
	return trans, hbase.NewHbaseClientProtocol(trans, proto, proto), nil
}

func newTransport(o *Options) (thrift.TTransport, error) {
	switch o.Kind {
	case Buffered, Framed:
		socket, err := thrift.NewTSocketTimeout(o.Address(), o.Timeout, o.Timeout)
		if err != nil {
			return nil, errors.Wrapf(err, "create socket for %s", o.Address())
		}
		if o.Kind == Framed {
			return thrift.NewTFramedTransport(socket), nil
		}
		return thrift.NewTBufferedTransport(socket, bufferSize), nil
	case HTTP:
		httpClient := http.Client{
			Transport: &RoundTripper{
				Headers: o.Headers,
			},
			Timeout: o.Timeout,
		}
		trans, err := thrift.NewTHttpClientWithOptions(fmt.Sprintf("http://%s/", o.Address()), thrift.THttpClientOptions{Client: &httpClient})
		if err != nil {
			return nil, errors.Wrapf(err, "create http transport for %s", o.Address())
		}
		return trans, nil
	}
	return nil, errors.Errorf("unknown transport %q", o.Kind)
}
