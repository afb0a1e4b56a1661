// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// LEDES client services and terminal UI.
//
// All Msg* constants are human-readable strings that are shown to the user or
// written into log entries. Keeping them in one place keeps the wording of the
// progress feed, error banners and log lines consistent.
package app

// Progress labels, one per pipeline step.
const (
	MsgUploadingFiles       = "Uploading files..."
	MsgRefreshingSession    = "Refreshing session..."
	MsgProcessingInvoices   = "Processing invoices..."
	MsgExtractingMetadata   = "Extracting metadata..."
	MsgGeneratingLedeReport = "Generating LEDES report..."
	MsgProcessingComplete   = "Processing complete"
	MsgCompleteWithErrors   = "Processing finished with errors"
	MsgNothingToProcess     = "No new files to process"
	MsgPipelineFailed       = "Upload failed"
)

const (
	// MsgSessionExpired is shown when the refresh token was rejected and the
	// user has to log in again.
	MsgSessionExpired = "Session expired. Please login again."

	// MsgAuthExhausted is shown when the upload was still rejected with 401
	// after a successful token refresh.
	MsgAuthExhausted = "Authentication failed after retry. Please login again."

	// MsgNoRefreshToken is the cause recorded when a refresh is attempted
	// without a stored refresh token.
	MsgNoRefreshToken = "No refresh token available"

	// MsgProcessingFailed is used as the processing error when a step failed
	// without a usable message.
	MsgProcessingFailed = "Processing failed"

	// MsgUploadFailed is the fallback prefix for a failed upload request.
	MsgUploadFailed = "Upload failed"

	// MsgLoginFailed is the fallback prefix for a rejected login.
	MsgLoginFailed = "Login failed"

	MsgEmptyCredentials = "email and password are required"
	MsgNoFilesSelected  = "Please select at least one file"

	// MsgUnknownInvoice is the invoice name used when none can be derived from
	// an output file path.
	MsgUnknownInvoice = "Unknown Invoice"
)
