/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

import "github.com/yapfcp/yapfcp/pfcp/util"

// Flag IEs carry one bit per feature, octet 5 of the IE in the low bits of the value,
// octet 6 in the next eight bits and so on.

// Apply Action flags.
const (
	ApplyActionDROP uint16 = 0x0001
	ApplyActionFORW uint16 = 0x0002
	ApplyActionBUFF uint16 = 0x0004
	ApplyActionNOCP uint16 = 0x0008
	ApplyActionDUPL uint16 = 0x0010
	ApplyActionIPMA uint16 = 0x0020
	ApplyActionIPMD uint16 = 0x0040
	ApplyActionDFRT uint16 = 0x0080
	ApplyActionEDRT uint16 = 0x0100
	ApplyActionBDPN uint16 = 0x0200
	ApplyActionDDPN uint16 = 0x0400
	ApplyActionFSSM uint16 = 0x0800
	ApplyActionMBSU uint16 = 0x1000
)

// Reporting Triggers flags.
const (
	ReportingTriggerPERIO uint32 = 1 << iota
	ReportingTriggerVOLTH
	ReportingTriggerTIMTH
	ReportingTriggerQUHTI
	ReportingTriggerSTART
	ReportingTriggerSTOPT
	ReportingTriggerDROTH
	ReportingTriggerLIUSA
	ReportingTriggerVOLQU
	ReportingTriggerTIMQU
	ReportingTriggerENVCL
	ReportingTriggerMACAR
	ReportingTriggerEVETH
	ReportingTriggerEVEQU
	ReportingTriggerIPMJL
	ReportingTriggerQUVTI
	ReportingTriggerREEMR
	ReportingTriggerUPINT
)

// Usage Report Trigger flags.
const (
	UsageReportTriggerPERIO uint32 = 1 << iota
	UsageReportTriggerVOLTH
	UsageReportTriggerTIMTH
	UsageReportTriggerQUHTI
	UsageReportTriggerSTART
	UsageReportTriggerSTOPT
	UsageReportTriggerDROTH
	UsageReportTriggerIMMER
	UsageReportTriggerVOLQU
	UsageReportTriggerTIMQU
	UsageReportTriggerLIUSA
	UsageReportTriggerTERMR
	UsageReportTriggerMONIT
	UsageReportTriggerENVCL
	UsageReportTriggerMACAR
	UsageReportTriggerEVETH
	UsageReportTriggerEVEQU
	UsageReportTriggerTEBUR
	UsageReportTriggerIPMJL
	UsageReportTriggerQUVTI
	UsageReportTriggerEMRRE
	UsageReportTriggerUPINT
)

// Measurement Method flags.
const (
	MeasurementMethodDURAT uint8 = 0x01
	MeasurementMethodVOLUM uint8 = 0x02
	MeasurementMethodEVENT uint8 = 0x04
)

// Report Type flags.
const (
	ReportTypeDLDR uint8 = 0x01
	ReportTypeUSAR uint8 = 0x02
	ReportTypeERIR uint8 = 0x04
	ReportTypeUPIR uint8 = 0x08
	ReportTypeTMIR uint8 = 0x10
	ReportTypeSESR uint8 = 0x20
	ReportTypeUISR uint8 = 0x40
)

// Node Report Type flags.
const (
	NodeReportTypeUPFR uint8 = 0x01
	NodeReportTypeUPRR uint8 = 0x02
	NodeReportTypeCKDR uint8 = 0x04
	NodeReportTypeGPQR uint8 = 0x08
	NodeReportTypePURR uint8 = 0x10
	NodeReportTypeVSR  uint8 = 0x20
)

// Measurement Information flags.
const (
	MeasurementInformationMBQE  uint8 = 0x01
	MeasurementInformationINAM  uint8 = 0x02
	MeasurementInformationRADI  uint8 = 0x04
	MeasurementInformationISTM  uint8 = 0x08
	MeasurementInformationMNOP  uint8 = 0x10
	MeasurementInformationSSPOC uint8 = 0x20
	MeasurementInformationASPOC uint8 = 0x40
	MeasurementInformationCIAM  uint8 = 0x80
)

// Usage Information flags.
const (
	UsageInformationBEF uint8 = 0x01
	UsageInformationAFT uint8 = 0x02
	UsageInformationUAE uint8 = 0x04
	UsageInformationUBE uint8 = 0x08
)

// One-octet flags of the remaining flag IEs.
const (
	PFCPSMReqFlagsDROBU  uint8 = 0x01
	PFCPSMReqFlagsSNDEM  uint8 = 0x02
	PFCPSMReqFlagsQAURR  uint8 = 0x04
	PFCPSMReqFlagsSUMPC  uint8 = 0x08
	PFCPSMReqFlagsRUMUC  uint8 = 0x10
	PFCPSMReqFlagsDETEID uint8 = 0x20
	PFCPSMReqFlagsHRSBOM uint8 = 0x40

	PFCPSRRspFlagsDROBU uint8 = 0x01
	PFCPSRReqFlagsPSDBU uint8 = 0x01
	PFCPAUReqFlagsPARPS uint8 = 0x01

	PFCPASRspFlagsPSREI uint8 = 0x01
	PFCPASRspFlagsUUPSI uint8 = 0x02

	PFCPSEReqFlagsRESTI  uint8 = 0x01
	PFCPSEReqFlagsSUMPC  uint8 = 0x02
	PFCPSEReqFlagsHRSBOM uint8 = 0x04

	PFCPASReqFlagsUUPSI uint8 = 0x01
	PFCPSDRspFlagsPURU  uint8 = 0x01

	AssociationReleaseRequestSARR uint8 = 0x01
	AssociationReleaseRequestURSS uint8 = 0x02

	OCIFlagsAOCI              uint8 = 0x01
	QERControlIndicationsRCSR uint8 = 0x01
	DataStatusDROP            uint8 = 0x01
	DataStatusBUFF            uint8 = 0x02
	ProxyingARP               uint8 = 0x01
	ProxyingINS               uint8 = 0x02
	EthernetFilterBIDE        uint8 = 0x01
	EthernetPDUSessionETHI    uint8 = 0x01
)

// UP Function Features flags (octets 5 to 8).
const (
	UPFeatureBUCP uint64 = 1 << iota
	UPFeatureDDND
	UPFeatureDLBD
	UPFeatureTRST
	UPFeatureFTUP
	UPFeaturePFDM
	UPFeatureHEEU
	UPFeatureTREU
	UPFeatureEMPU
	UPFeaturePDIU
	UPFeatureUDBC
	UPFeatureQUOAC
	UPFeatureTRACE
	UPFeatureFRRT
	UPFeaturePFDE
	UPFeatureEPFAR
	UPFeatureDPDRA
	UPFeatureADPDP
	UPFeatureUEIP
	UPFeatureSSET
	UPFeatureMNOP
	UPFeatureMTE
	UPFeatureBUNDL
	UPFeatureGCOM
	UPFeatureMPAS
	UPFeatureRTTL
	UPFeatureVTIME
	UPFeatureNORP
	UPFeatureIPTV
	UPFeatureIP6PL
	UPFeatureTSCU
	UPFeatureMPTCP
)

// CP Function Features flags (octets 5 and 6).
const (
	CPFeatureLOAD uint64 = 1 << iota
	CPFeatureOVRL
	CPFeatureEPFAR
	CPFeatureSSET
	CPFeatureBUNDL
	CPFeatureMPAS
	CPFeatureARDR
	CPFeatureUIAUR
	CPFeaturePSUCC
	CPFeatureRPGUR
)

// Single-octet flag IE types handled by NewFlags and Flags.
var octetFlagTypes = map[Type]struct{}{
	TypeMeasurementMethod:             {},
	TypeReportType:                    {},
	TypeNodeReportType:                {},
	TypeMeasurementInformation:        {},
	TypeUsageInformation:              {},
	TypePFCPSMReqFlags:                {},
	TypePFCPSRRspFlags:                {},
	TypePFCPSRReqFlags:                {},
	TypePFCPAUReqFlags:                {},
	TypePFCPASRspFlags:                {},
	TypePFCPSEReqFlags:                {},
	TypePFCPASReqFlags:                {},
	TypePFCPSDRspFlags:                {},
	TypePFCPAssociationReleaseRequest: {},
	TypeOCIFlags:                      {},
	TypeQERControlIndications:         {},
	TypeDataStatus:                    {},
	TypeProxying:                      {},
	TypeEthernetFilterProperties:      {},
	TypeEthernetPDUSessionInformation: {},
	TypeCreateBridgeInfoForTSC:        {},
}

// NewFlags creates a single-octet flag IE such as PFCPSEReq-Flags or Report Type.
func NewFlags(t Type, flags uint8) (*IE, error) {
	if _, ok := octetFlagTypes[t]; !ok {
		return nil, invalid(t, "not a single-octet flag IE")
	}
	return newUint8(t, flags), nil
}

// Flags returns the flag octet of a single-octet flag IE.
func (i *IE) Flags() (uint8, error) {
	if i == nil {
		return 0, util.ErrNonExistent
	}
	if _, ok := octetFlagTypes[i.Type]; !ok {
		return 0, invalid(i.Type, "not a single-octet flag IE")
	}
	return i.ValueAsUint8()
}

// HasFlag reports whether every bit of mask is set in a single-octet flag IE.
// Absent or malformed IEs report false.
func (i *IE) HasFlag(mask uint8) bool {
	v, err := i.Flags()
	return err == nil && v&mask == mask
}

// marshalBits encodes v as octets 5, 6, ... with at least minLen octets and no trailing zero octets beyond that.
func marshalBits(v uint64, minLen int) []byte {
	n := minLen
	for x := v >> (8 * minLen); x != 0; x >>= 8 {
		n++
	}
	b := make([]byte, n)
	for k := 0; k < n; k++ {
		b[k] = byte(v >> (8 * k))
	}
	return b
}

func parseBits(b []byte, maxLen int) uint64 {
	var v uint64
	for k := 0; k < len(b) && k < maxLen; k++ {
		v |= uint64(b[k]) << (8 * k)
	}
	return v
}

// NewApplyAction creates an Apply Action IE.
func NewApplyAction(flags uint16) *IE {
	return New(TypeApplyAction, marshalBits(uint64(flags), 1))
}

// ApplyAction returns the flags of an Apply Action IE.
func (i *IE) ApplyAction() (uint16, error) {
	if err := i.expect(TypeApplyAction); err != nil {
		return 0, err
	}
	if len(i.Payload) < 1 {
		return 0, tooShort(i.Type, 1, 0)
	}
	return uint16(parseBits(i.Payload, 2)), nil
}

// NewReportingTriggers creates a Reporting Triggers IE.
func NewReportingTriggers(flags uint32) *IE {
	return New(TypeReportingTriggers, marshalBits(uint64(flags), 2))
}

// ReportingTriggers returns the flags of a Reporting Triggers IE.
func (i *IE) ReportingTriggers() (uint32, error) {
	if err := i.expect(TypeReportingTriggers); err != nil {
		return 0, err
	}
	if len(i.Payload) < 2 {
		return 0, tooShort(i.Type, 2, len(i.Payload))
	}
	return uint32(parseBits(i.Payload, 3)), nil
}

// NewUsageReportTrigger creates a Usage Report Trigger IE.
func NewUsageReportTrigger(flags uint32) *IE {
	return New(TypeUsageReportTrigger, marshalBits(uint64(flags), 2))
}

// UsageReportTrigger returns the flags of a Usage Report Trigger IE.
func (i *IE) UsageReportTrigger() (uint32, error) {
	if err := i.expect(TypeUsageReportTrigger); err != nil {
		return 0, err
	}
	if len(i.Payload) < 2 {
		return 0, tooShort(i.Type, 2, len(i.Payload))
	}
	return uint32(parseBits(i.Payload, 3)), nil
}

// NewUPFunctionFeatures creates a UP Function Features IE.
func NewUPFunctionFeatures(features uint64) *IE {
	return New(TypeUPFunctionFeatures, marshalBits(features, 2))
}

// UPFunctionFeatures returns the feature bits of a UP Function Features IE.
func (i *IE) UPFunctionFeatures() (uint64, error) {
	if err := i.expect(TypeUPFunctionFeatures); err != nil {
		return 0, err
	}
	if len(i.Payload) < 2 {
		return 0, tooShort(i.Type, 2, len(i.Payload))
	}
	return parseBits(i.Payload, 8), nil
}

// NewCPFunctionFeatures creates a CP Function Features IE.
func NewCPFunctionFeatures(features uint64) *IE {
	return New(TypeCPFunctionFeatures, marshalBits(features, 1))
}

// CPFunctionFeatures returns the feature bits of a CP Function Features IE.
func (i *IE) CPFunctionFeatures() (uint64, error) {
	if err := i.expect(TypeCPFunctionFeatures); err != nil {
		return 0, err
	}
	if len(i.Payload) < 1 {
		return 0, tooShort(i.Type, 1, 0)
	}
	return parseBits(i.Payload, 8), nil
}
