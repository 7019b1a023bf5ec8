// Package vocabulary loads the controlled-vocabulary registry and answers
// code-resolution and version-compatibility questions for the intake
// pipeline. Vocabularies are YAML files, one per domain, shipped by the seed
// tool and versioned with semantic versions.
package vocabulary

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Code is one controlled code with its display labels.
type Code struct {
	Code    string `yaml:"code"`
	LabelEN string `yaml:"label_en"`
	LabelAR string `yaml:"label_ar"`
}

// Domain is one vocabulary file.
type Domain struct {
	Domain  string `yaml:"domain"`
	Version string `yaml:"version"`
	Codes   []Code `yaml:"codes"`
}

// Verdict classifies a device vocabulary version against the server's.
type Verdict int

const (
	Identical Verdict = iota
	PatchDifference
	MinorDifference
	MajorDifference
	UnknownDomain
)

func (v Verdict) String() string {
	switch v {
	case Identical:
		return "identical"
	case PatchDifference:
		return "patch_difference"
	case MinorDifference:
		return "minor_difference"
	case MajorDifference:
		return "major_difference"
	default:
		return "unknown_domain"
	}
}

// Compatible reports whether a package exported under this verdict may enter
// the pipeline. Minor differences are compatible with a warning; major
// differences and unknown domains are not.
func (v Verdict) Compatible() bool {
	return v == Identical || v == PatchDifference || v == MinorDifference
}

type domainEntry struct {
	version string
	codes   map[string]Code
}

// Registry is the loaded vocabulary set. Load once at boot; reads are
// lock-free afterwards.
type Registry struct {
	domains map[string]domainEntry
}

// Load reads every *.yaml / *.yml file under dir.
func Load(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: read dir %s: %w", dir, err)
	}

	r := &Registry{domains: map[string]domainEntry{}}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("vocabulary: read %s: %w", path, err)
		}
		var d Domain
		if err := yaml.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("vocabulary: parse %s: %w", path, err)
		}
		if err := r.add(d); err != nil {
			return nil, fmt.Errorf("vocabulary: %s: %w", path, err)
		}
	}
	return r, nil
}

// FromDomains builds a registry from in-memory definitions. Tests and the
// seed tool use it.
func FromDomains(domains ...Domain) (*Registry, error) {
	r := &Registry{domains: map[string]domainEntry{}}
	for _, d := range domains {
		if err := r.add(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) add(d Domain) error {
	if d.Domain == "" {
		return fmt.Errorf("missing domain name")
	}
	if !semver.IsValid(canon(d.Version)) {
		return fmt.Errorf("domain %s: version %q is not a semantic version", d.Domain, d.Version)
	}
	if _, dup := r.domains[d.Domain]; dup {
		return fmt.Errorf("domain %s declared twice", d.Domain)
	}
	codes := make(map[string]Code, len(d.Codes))
	for _, c := range d.Codes {
		if c.Code == "" {
			return fmt.Errorf("domain %s: empty code", d.Domain)
		}
		codes[c.Code] = c
	}
	r.domains[d.Domain] = domainEntry{version: d.Version, codes: codes}
	return nil
}

// Has reports whether a code exists in a domain.
func (r *Registry) Has(domain, code string) bool {
	d, ok := r.domains[domain]
	if !ok {
		return false
	}
	_, ok = d.codes[code]
	return ok
}

// Version returns a domain's server-side version.
func (r *Registry) Version(domain string) (string, bool) {
	d, ok := r.domains[domain]
	if !ok {
		return "", false
	}
	return d.version, true
}

// Domains lists the loaded domain names, sorted.
func (r *Registry) Domains() []string {
	out := make([]string, 0, len(r.domains))
	for name := range r.domains {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Compare classifies a device vocabulary version against the server's copy
// of the same domain. A device version that is not a valid semantic version
// counts as a major difference.
func (r *Registry) Compare(domain, deviceVersion string) Verdict {
	d, ok := r.domains[domain]
	if !ok {
		return UnknownDomain
	}
	server, device := canon(d.version), canon(deviceVersion)
	if !semver.IsValid(device) {
		return MajorDifference
	}
	if semver.Compare(server, device) == 0 {
		return Identical
	}
	if semver.Major(server) != semver.Major(device) {
		return MajorDifference
	}
	if semver.MajorMinor(server) != semver.MajorMinor(device) {
		return MinorDifference
	}
	return PatchDifference
}

// DeviceAhead reports whether the device exported under a strictly newer
// vocabulary version than the server holds. The validator downgrades
// unknown-code findings to advisory when the device is ahead on a
// compatible version.
func (r *Registry) DeviceAhead(domain, deviceVersion string) bool {
	d, ok := r.domains[domain]
	if !ok {
		return false
	}
	device := canon(deviceVersion)
	if !semver.IsValid(device) {
		return false
	}
	return semver.Compare(device, canon(d.version)) > 0
}

// DomainVerdict is one row of a manifest compatibility check.
type DomainVerdict struct {
	Domain        string  `json:"domain"`
	ServerVersion string  `json:"server_version,omitempty"`
	DeviceVersion string  `json:"device_version"`
	Verdict       Verdict `json:"verdict"`
}

func (dv DomainVerdict) String() string {
	return fmt.Sprintf("%s: device %s vs server %s (%s)",
		dv.Domain, dv.DeviceVersion, dv.ServerVersion, dv.Verdict)
}

// CompatibilityReport is the per-domain outcome of checking a manifest's
// vocabulary_versions map.
type CompatibilityReport struct {
	Verdicts []DomainVerdict
}

// CheckManifest compares every vocabulary version a manifest declares.
// Domains the manifest omits are not checked; their codes still resolve (or
// fail) row by row during validation.
func (r *Registry) CheckManifest(versions map[string]string) CompatibilityReport {
	domains := make([]string, 0, len(versions))
	for d := range versions {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	rep := CompatibilityReport{}
	for _, d := range domains {
		server, _ := r.Version(d)
		rep.Verdicts = append(rep.Verdicts, DomainVerdict{
			Domain:        d,
			ServerVersion: server,
			DeviceVersion: versions[d],
			Verdict:       r.Compare(d, versions[d]),
		})
	}
	return rep
}

// Incompatible returns the verdicts that quarantine a package.
func (rep CompatibilityReport) Incompatible() []DomainVerdict {
	var out []DomainVerdict
	for _, v := range rep.Verdicts {
		if !v.Verdict.Compatible() {
			out = append(out, v)
		}
	}
	return out
}

// Warnings returns the minor-difference verdicts, recorded as receive
// warnings on the package.
func (rep CompatibilityReport) Warnings() []DomainVerdict {
	var out []DomainVerdict
	for _, v := range rep.Verdicts {
		if v.Verdict == MinorDifference {
			out = append(out, v)
		}
	}
	return out
}

func canon(v string) string {
	return "v" + strings.TrimPrefix(v, "v")
}
