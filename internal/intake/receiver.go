package intake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"uhc-registry.io/registry/internal/archive"
	"uhc-registry.io/registry/internal/domain"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
	"uhc-registry.io/registry/internal/pkg/logger"
	"uhc-registry.io/registry/internal/vocabulary"
)

// copyBufSize is the fixed buffer for spooling uploads; containers are never
// held in memory whole.
const copyBufSize = 256 * 1024

// ReceiverConfig is the receive-time policy.
type ReceiverConfig struct {
	SpoolDir string
	// MaxPackageSizeBytes rejects larger uploads; zero disables the ceiling.
	MaxPackageSizeBytes int64
	// SignatureRequired quarantines unsigned packages.
	SignatureRequired bool
	// SignaturePublicKey is the base64 ed25519 verification key.
	SignaturePublicKey string
}

// Receiver ingests .uhc containers: spool, verify, persist or quarantine.
type Receiver struct {
	cfg      ReceiverConfig
	packages PackageStore
	vocab    *vocabulary.Registry
	events   EventRecorder
	audit    AuditSink
	now      func() time.Time
}

// NewReceiver wires a Receiver.
func NewReceiver(cfg ReceiverConfig, packages PackageStore, vocab *vocabulary.Registry,
	events EventRecorder, audit AuditSink) *Receiver {
	return &Receiver{
		cfg:      cfg,
		packages: packages,
		vocab:    vocab,
		events:   events,
		audit:    audit,
		now:      time.Now,
	}
}

// Receive streams one uploaded container through verification and persists
// the package as Pending or Quarantined. A previously received PackageId
// returns the stored snapshot untouched with IsDuplicatePackage set.
func (r *Receiver) Receive(ctx context.Context, source io.Reader, fileName string,
	method domain.ImportMethod, actor string) (*domain.ReceiveResult, error) {

	tempPath, size, err := r.spool(source)
	if err != nil {
		return nil, err
	}
	keepTemp := false
	defer func() {
		if !keepTemp {
			os.Remove(tempPath)
		}
	}()

	reader, err := archive.Open(tempPath)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeManifestInvalid,
			"file is not a readable package container", http.StatusUnprocessableEntity)
	}

	manifest, err := reader.Manifest()
	if err != nil {
		reader.Close()
		return nil, apperrors.Wrap(err, apperrors.CodeManifestInvalid,
			"package manifest is missing or malformed", http.StatusUnprocessableEntity)
	}
	if err := manifest.Validate(); err != nil {
		reader.Close()
		return nil, apperrors.Wrap(err, apperrors.CodeManifestInvalid,
			"package manifest failed validation", http.StatusUnprocessableEntity)
	}

	// Idempotency on the manifest PackageId: a re-upload returns the stored
	// snapshot and touches nothing.
	if existing, err := r.packages.Get(ctx, manifest.PackageID); err == nil {
		reader.Close()
		logger.Info("Duplicate package upload ignored",
			zap.String("package_id", manifest.PackageID.String()),
			zap.String("package_number", existing.PackageNumber),
		)
		return &domain.ReceiveResult{Package: existing, IsDuplicatePackage: true}, nil
	} else if appErr, ok := apperrors.IsAppError(err); !ok || appErr.Code != apperrors.CodePackageNotFound {
		reader.Close()
		return nil, err
	}

	computed, err := reader.ContentChecksum()
	reader.Close()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeManifestInvalid,
			"package content could not be canonicalised", http.StatusUnprocessableEntity)
	}

	now := r.now().UTC()
	pkg := &domain.ImportPackage{
		ID:                       manifest.PackageID,
		Status:                   domain.StatusPending,
		ImportMethod:             method,
		FileName:                 fileName,
		FileSizeBytes:            size,
		SchemaVersion:            manifest.SchemaVersion,
		CreatedUTC:               manifest.CreatedUTC,
		ExportedDateUTC:          manifest.ExportedDateUTC,
		ExportedByUserID:         manifest.ExportedByUserID,
		DeviceID:                 manifest.DeviceID,
		TotalRecordCount:         manifest.TotalRecordCount,
		EntityCounts:             manifest.EntityCounts,
		TotalAttachmentSizeBytes: manifest.TotalAttachmentSizeBytes,
		VocabularyVersions:       manifest.VocabularyVersions,
		ExpectedChecksum:         strings.ToLower(manifest.Checksum),
		ComputedChecksum:         computed,
		SignatureStatus:          domain.SignatureNone,
		ReceivedBy:               actor,
	}

	quarantine := r.verify(manifest, computed, pkg)

	finalPath := filepath.Join(r.cfg.SpoolDir, manifest.PackageID.String()+".uhc")
	if err := os.Rename(tempPath, finalPath); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeTransportError,
			"could not place package in spool", http.StatusInternalServerError)
	}
	keepTemp = true
	pkg.StoragePath = finalPath

	if quarantine != "" {
		pkg.Status = domain.StatusQuarantined
		pkg.QuarantinedReason = quarantine
	}

	number, err := r.packages.NextPackageNumber(ctx, now)
	if err != nil {
		os.Remove(finalPath)
		return nil, err
	}
	pkg.PackageNumber = number

	if err := r.packages.Create(ctx, pkg); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			// Lost a race against a concurrent upload of the same package.
			os.Remove(finalPath)
			existing, getErr := r.packages.Get(ctx, manifest.PackageID)
			if getErr != nil {
				return nil, getErr
			}
			return &domain.ReceiveResult{Package: existing, IsDuplicatePackage: true}, nil
		}
		os.Remove(finalPath)
		return nil, err
	}

	r.audit.PackageAction(ctx, actor, "package.receive", pkg.ID, map[string]interface{}{
		"package_number": pkg.PackageNumber,
		"file_name":      fileName,
		"file_size":      size,
		"import_method":  string(method),
		"status":         string(pkg.Status),
	})
	if quarantine != "" {
		logger.Warn("Package quarantined at receive",
			zap.String("package_id", pkg.ID.String()),
			zap.String("reason", quarantine),
			zap.String("device_id", pkg.DeviceID),
		)
		r.events.PackageEvent(ctx, domain.EventPackageQuarantined, pkg, actor, quarantine)
	} else {
		logger.Info("Package received",
			zap.String("package_id", pkg.ID.String()),
			zap.String("package_number", pkg.PackageNumber),
			zap.String("device_id", pkg.DeviceID),
			zap.Int64("file_size", size),
		)
		r.events.PackageEvent(ctx, domain.EventPackageReceived, pkg, actor, "")
	}

	return &domain.ReceiveResult{Package: pkg, Warnings: pkg.ReceiveWarnings}, nil
}

// spool streams the upload into a temp file under the spool dir, enforcing
// the size ceiling.
func (r *Receiver) spool(source io.Reader) (string, int64, error) {
	if err := os.MkdirAll(r.cfg.SpoolDir, 0o755); err != nil {
		return "", 0, apperrors.Wrap(err, apperrors.CodeTransportError,
			"spool directory unavailable", http.StatusInternalServerError)
	}
	tmp, err := os.CreateTemp(r.cfg.SpoolDir, "incoming-*.uhc")
	if err != nil {
		return "", 0, apperrors.Wrap(err, apperrors.CodeTransportError,
			"could not create spool file", http.StatusInternalServerError)
	}

	limited := source
	if r.cfg.MaxPackageSizeBytes > 0 {
		limited = io.LimitReader(source, r.cfg.MaxPackageSizeBytes+1)
	}
	buf := make([]byte, copyBufSize)
	size, err := io.CopyBuffer(tmp, limited, buf)
	closeErr := tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		return "", 0, apperrors.Wrap(err, apperrors.CodeTransportError,
			"upload stream failed", http.StatusBadGateway)
	}
	if closeErr != nil {
		os.Remove(tmp.Name())
		return "", 0, apperrors.Wrap(closeErr, apperrors.CodeTransportError,
			"could not finish spool file", http.StatusInternalServerError)
	}
	if r.cfg.MaxPackageSizeBytes > 0 && size > r.cfg.MaxPackageSizeBytes {
		os.Remove(tmp.Name())
		return "", 0, apperrors.New(apperrors.CodePackageTooLarge,
			fmt.Sprintf("package exceeds the %d byte ceiling", r.cfg.MaxPackageSizeBytes),
			http.StatusRequestEntityTooLarge)
	}
	return tmp.Name(), size, nil
}

// verify runs checksum, signature and vocabulary policy. It mutates pkg
// (signature status, warnings) and returns a quarantine reason code, or ""
// for a healthy package.
func (r *Receiver) verify(manifest *domain.Manifest, computed string, pkg *domain.ImportPackage) string {
	// Tamper evidence first: a present checksum must match before anything
	// else about the content can be trusted. An empty checksum claims no
	// tamper evidence, so none is checked.
	if manifest.Checksum != "" && !strings.EqualFold(manifest.Checksum, computed) {
		return apperrors.CodeChecksumMismatch
	}

	if manifest.DigitalSignature != "" {
		ok, err := archive.VerifySignature(computed, manifest.DigitalSignature, r.cfg.SignaturePublicKey)
		if err != nil || !ok {
			pkg.SignatureStatus = domain.SignatureInvalid
			return apperrors.CodeSignatureInvalid
		}
		pkg.SignatureStatus = domain.SignatureValid
	} else if r.cfg.SignatureRequired {
		return apperrors.CodeSignatureRequired
	}

	rep := r.vocab.CheckManifest(manifest.VocabularyVersions)
	if bad := rep.Incompatible(); len(bad) > 0 {
		return apperrors.CodeVocabularyIncompatible
	}
	for _, w := range rep.Warnings() {
		pkg.ReceiveWarnings = append(pkg.ReceiveWarnings, w.String())
	}
	return ""
}
