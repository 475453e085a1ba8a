package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/disintegration/imaging"
	"github.com/joho/godotenv"
	"github.com/nfnt/resize"

	"github.com/timothyhahn/raytracer-go/pkg/loaders"
	"github.com/timothyhahn/raytracer-go/pkg/renderer"
	"github.com/timothyhahn/raytracer-go/pkg/scene"
)

// getEnv returns an environment variable or a fallback value
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func main() {
	sceneFlag := flag.String("scene", "default", "Built-in scene name or path to a .json scene file")
	width := flag.Int("width", 800, "Image width in pixels (ignored for .json scenes)")
	height := flag.Int("height", 600, "Image height in pixels (ignored for .json scenes)")
	out := flag.String("out", "", "Output file (.ppm, .ppm.gz, .png or .jpg); default output/<scene>_<timestamp>.png")
	workers := flag.Int("workers", 0, "Render workers, 0 = one per CPU")
	thumb := flag.String("thumb", "", "Also write a 256px thumbnail PNG to this path")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default  - Three spheres over a checkered floor")
		fmt.Println("  showcase - One of every primitive, with glass and mirrors")
		fmt.Println("  <path>   - Any .json scene file")
		return
	}

	_ = godotenv.Load()

	sc, sceneName, err := loadScene(*sceneFlag, *width, *height)
	if err != nil {
		log.Fatalf("Error loading scene: %v", err)
	}

	fmt.Printf("Rendering %s at %dx%d...\n", sceneName, sc.Camera.HSize, sc.Camera.VSize)

	startTime := time.Now()
	canvas := sc.Camera.RenderParallel(sc.World, *workers, func(completed, total int) {
		if completed%50 == 0 || completed == total {
			fmt.Printf("  %d/%d rows\n", completed, total)
		}
	})
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	outPath := *out
	if outPath == "" {
		outputDir := filepath.Join("output", sceneName)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			log.Fatalf("Error creating output directory: %v", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		outPath = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := saveCanvas(canvas, outPath); err != nil {
		log.Fatalf("Error saving render: %v", err)
	}
	fmt.Printf("Render saved as %s\n", outPath)

	if *thumb != "" {
		if err := saveThumbnail(canvas, *thumb); err != nil {
			log.Fatalf("Error saving thumbnail: %v", err)
		}
		fmt.Printf("Thumbnail saved as %s\n", *thumb)
	}

	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		key := fmt.Sprintf("renders/%s", filepath.Base(outPath))
		if err := uploadToS3(canvas, bucket, key); err != nil {
			log.Fatalf("Error uploading to S3: %v", err)
		}
		fmt.Printf("Uploaded render to s3://%s/%s\n", bucket, key)
	}
}

// loadScene resolves the -scene flag: a .json path loads a scene file,
// anything else looks up a built-in scene.
func loadScene(name string, width, height int) (*scene.Scene, string, error) {
	if strings.HasSuffix(name, ".json") {
		sc, err := loaders.Load(name)
		if err != nil {
			return nil, "", err
		}
		base := strings.TrimSuffix(filepath.Base(name), ".json")
		return sc, base, nil
	}

	builder, ok := scene.Builders[name]
	if !ok {
		return nil, "", fmt.Errorf("unknown scene %q", name)
	}
	return builder(width, height), name, nil
}

// saveCanvas writes the canvas in the format implied by the file extension
func saveCanvas(canvas *renderer.Canvas, path string) error {
	switch {
	case strings.HasSuffix(path, ".ppm.gz"):
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		return canvas.WritePPMGz(file)
	case strings.HasSuffix(path, ".ppm"):
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		return canvas.WritePPM(file)
	default:
		return imaging.Save(canvas.ToImage(), path)
	}
}

// saveThumbnail scales the render down to 256px wide and writes a PNG
func saveThumbnail(canvas *renderer.Canvas, path string) error {
	thumbnail := resize.Resize(256, 0, canvas.ToImage(), resize.Bilinear)
	return imaging.Save(thumbnail, path)
}

// uploadToS3 publishes the render as a public PNG. Credentials, endpoint
// and region come from the environment (or a .env file).
func uploadToS3(canvas *renderer.Canvas, bucket, key string) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas.ToImage()); err != nil {
		return err
	}

	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), ""),
		Endpoint:         aws.String(os.Getenv("S3_ENDPOINT")),
		Region:           aws.String(getEnv("S3_REGION", "us-east-1")),
		S3ForcePathStyle: aws.Bool(true),
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return fmt.Errorf("creating S3 session: %w", err)
	}

	size := int64(buf.Len())
	_, err = s3.New(sess).PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}
	return nil
}
