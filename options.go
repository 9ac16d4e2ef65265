package raster

import (
	"image"
	"image/color"
)

// RedisplayFunc is called after a drawing operation completes with the
// rectangle of pixels which changed. The rectangle may be empty when
// nothing inside the surface was touched.
type RedisplayFunc func(dirty image.Rectangle)

// Option configures a Surface during creation.
//
//	s, err := raster.NewSurface(640, 480,
//	    raster.WithBackground(color.Black),
//	    raster.WithRedisplay(func(r image.Rectangle) { window.Invalidate(r) }),
//	)
type Option func(*options)

type options struct {
	background color.NRGBA
	redisplay  RedisplayFunc
}

func defaultOptions() options {
	return options{
		background: White,
		redisplay:  func(image.Rectangle) {},
	}
}

// WithBackground sets the color used when the surface is created, resized or cleared.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = toNRGBA(c)
	}
}

// WithRedisplay installs the callback notified after every drawing operation.
func WithRedisplay(fn RedisplayFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.redisplay = fn
		}
	}
}
