package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/user/pinchview/pkg/mocks"
	"github.com/user/pinchview/pkg/ports"
)

var pngStub = []byte{0x89, 0x50, 0x4E, 0x47}

func newRenderer(t *testing.T) *mocks.Renderer {
	return &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			if format != ports.FormatPNG {
				t.Errorf("expected PNG format, got %d", format)
			}
			return pngStub, nil
		},
	}
}

func frame() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 4, 8))
}

func TestSink_JSONArtifacts(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New("debug", fs, newRenderer(t))

	if !sink.Enabled() {
		t.Fatal("expected sink with a base directory to be enabled")
	}
	if err := sink.SaveLayoutJSON([]byte(`{"viewport":{}}`)); err != nil {
		t.Fatalf("SaveLayoutJSON failed: %v", err)
	}
	if err := sink.SaveTraceJSON([]byte(`{"frames":[]}`)); err != nil {
		t.Fatalf("SaveTraceJSON failed: %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{filepath.Join("debug", "layout.json"), `{"viewport":{}}`},
		{filepath.Join("debug", "trace.json"), `{"frames":[]}`},
	}
	for _, tt := range tests {
		got, ok := fs.GetFile(tt.path)
		if !ok {
			t.Errorf("expected %s to be written", tt.path)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.path, tt.want, got)
		}
	}
}

func TestSink_SaveFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New("debug", fs, newRenderer(t))

	if err := sink.SaveFrame(5, frame()); err != nil {
		t.Fatalf("SaveFrame failed: %v", err)
	}

	path := filepath.Join("debug", "frames", "frame-0005.png")
	got, ok := fs.GetFile(path)
	if !ok {
		t.Fatalf("expected %s to be written", path)
	}
	if !reflect.DeepEqual(got, pngStub) {
		t.Errorf("expected PNG stub, got %v", got)
	}
}

func TestSink_FrameStride(t *testing.T) {
	tests := []struct {
		name   string
		stride int
		want   int
	}{
		{"default keeps all", 0, 10},
		{"one keeps all", 1, 10},
		{"every third", 3, 4}, // 0, 3, 6, 9
		{"larger than run", 20, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewFileSystem()
			sink := New("debug", fs, &mocks.Renderer{}, WithFrameStride(tt.stride))
			for i := 0; i < 10; i++ {
				if err := sink.SaveFrame(i, frame()); err != nil {
					t.Fatalf("SaveFrame %d failed: %v", i, err)
				}
			}
			if got := len(fs.Paths()); got != tt.want {
				t.Errorf("expected %d frames, got %d: %v", tt.want, got, fs.Paths())
			}
		})
	}
}

func TestSink_EncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	encodeErr := errors.New("boom")
	sink := New("debug", fs, &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, encodeErr
		},
	})

	if err := sink.SaveFrame(0, frame()); !errors.Is(err, encodeErr) {
		t.Errorf("expected wrapped encode error, got %v", err)
	}
	if len(fs.Paths()) != 0 {
		t.Error("no file should be written on encode failure")
	}
}

func TestSink_Disabled(t *testing.T) {
	for name, sink := range map[string]*Sink{
		"Disabled":      Disabled(),
		"empty basedir": New("", mocks.NewFileSystem(), &mocks.Renderer{}),
	} {
		t.Run(name, func(t *testing.T) {
			if sink.Enabled() {
				t.Error("expected sink to be disabled")
			}
			if err := sink.SaveLayoutJSON([]byte("{}")); err != nil {
				t.Errorf("SaveLayoutJSON: %v", err)
			}
			if err := sink.SaveTraceJSON([]byte("{}")); err != nil {
				t.Errorf("SaveTraceJSON: %v", err)
			}
			if err := sink.SaveFrame(0, frame()); err != nil {
				t.Errorf("SaveFrame: %v", err)
			}
		})
	}
}
