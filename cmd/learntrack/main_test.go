package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReportWithSampleItems(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--report", "--name", "Amina"}, &out))

	report := out.String()
	assert.Contains(t, report, "Amina's learning items:")
	assert.Contains(t, report, "[upcoming ] English Words - Lesson 1 (English Words, Morning 8:00 AM - 10:00 AM)")
	assert.Contains(t, report, "[due      ] Surah Al-Fatiha")
	assert.Contains(t, report, "[overdue  ] Poem - Nature")
	assert.Contains(t, report, "Performance: 1/5 stars, Very Poor (0% complete)")
}

func TestRunReportWithItemsDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "today.md"),
		[]byte("T: Surah Al-Ikhlas\nK: surahs\nS: end_of_day\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, run([]string{"--report", "--items-dir", dir}, &out))

	assert.Contains(t, out.String(), "Today's learning items:")
	assert.Contains(t, out.String(), "[overdue  ] Surah Al-Ikhlas (Surahs, End Of Day 10:00 PM)")
}

func TestRunRejectsBadConfig(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"--log-level", "loud"}, &out))
}
